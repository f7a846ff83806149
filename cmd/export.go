package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookclub-site/archive"
)

var exportCmdArgs struct {
	zipPath string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Pack the built site into a zip archive",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportCmdArgs.zipPath, "output", "o", "site.zip", "path of the zip archive to write")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := archive.Pack(cfg.OutputDir, exportCmdArgs.zipPath); err != nil {
		return fmt.Errorf("failed to export site: %w", err)
	}
	fmt.Printf("exported %s to %s\n", cfg.OutputDir, exportCmdArgs.zipPath)
	return nil
}
