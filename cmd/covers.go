package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookclub-site/content"
	"bookclub-site/covers"
)

var coversCmd = &cobra.Command{
	Use:   "covers",
	Short: "Download remote cover images into the static directory",
	Long:  "Fetches every remote cover referenced by a book, skipping covers already present",
	RunE:  runCovers,
}

func init() {
	RootCmd.AddCommand(coversCmd)
}

func runCovers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	fetched, err := covers.Download(store.Books, cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to download covers: %w", err)
	}
	fmt.Printf("downloaded %d covers\n", fetched)
	return nil
}
