package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"bookclub-site/content"
	"bookclub-site/render"
)

type buildCmdArgs struct {
	contentPath string
	outputPath  string
}

var buildArgs buildCmdArgs

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the site into the output directory",
	Long:  "Loads the content directory, derives every page and renders the full site",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildArgs.contentPath, "content-path", "i", "", "content directory (overrides config)")
	buildCmd.Flags().StringVarP(&buildArgs.outputPath, "output-path", "o", "", "output directory (overrides config)")
	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if buildArgs.contentPath != "" {
		cfg.ContentDir = buildArgs.contentPath
	}
	if buildArgs.outputPath != "" {
		cfg.OutputDir = buildArgs.outputPath
	}

	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	renderer, err := render.New(cfg)
	if err != nil {
		return err
	}
	report, err := renderer.RenderSite(store, time.Now())
	if err != nil {
		return fmt.Errorf("failed to render site: %w", err)
	}

	fmt.Println(renderTable(
		[]string{"Book pages", "Session pages", "Output", "Duration", "Build ID"},
		[][]string{{
			strconv.Itoa(report.BookPages),
			strconv.Itoa(report.SessionPages),
			report.OutputDir,
			report.Duration.Round(time.Millisecond).String(),
			report.BuildID,
		}},
	))
	return nil
}
