package main

import (
	"log"

	"bookclub-site/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
