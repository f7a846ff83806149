package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookclub-site/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify internal links in the generated site",
	Long:  "Parses every generated page and reports internal links that resolve to nothing",
	RunE:  runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	issues, err := check.Site(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to check site: %w", err)
	}
	if len(issues) == 0 {
		fmt.Println("no broken internal links")
		return nil
	}

	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{issue.Page, issue.Link})
	}
	fmt.Println(renderTable([]string{"Page", "Broken link"}, rows))
	return fmt.Errorf("found %d broken internal links", len(issues))
}
