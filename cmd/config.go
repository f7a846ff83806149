package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookclub-site/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage site configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	RootCmd.AddCommand(configCmd)
}
