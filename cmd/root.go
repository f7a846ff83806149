package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bookclub-site/config"
)

var RootCmd = &cobra.Command{
	Use:           "bookclub-site",
	Short:         "Static site generator for the book club",
	Long:          "Generates the book-club website from authored book and session documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "site.toml", "config file path")

	RootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
