package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"bookclub-site/content"
	"bookclub-site/site"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List authored content",
	Long:  "List authored content",
}

var listBooksCmd = &cobra.Command{
	Use:   "books",
	Short: "List books in display order",
	RunE:  runListBooks,
}

var listSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions with their resolved status",
	RunE:  runListSessions,
}

func init() {
	listCmd.AddCommand(listBooksCmd)
	listCmd.AddCommand(listSessionsCmd)
	RootCmd.AddCommand(listCmd)
}

func runListBooks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	rows := make([][]string, 0, len(store.Books))
	for _, book := range site.SortBooks(store.Books) {
		rows = append(rows, []string{
			strconv.Itoa(book.BookNumber),
			book.Slug,
			book.Title,
			book.Author,
			string(book.Status),
		})
	}
	fmt.Println(renderTable([]string{"#", "Slug", "Title", "Author", "Status"}, rows))
	return nil
}

func runListSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	now := time.Now()
	rows := make([][]string, 0, len(store.Sessions))
	for _, sess := range store.Sessions {
		status, err := site.ResolveSessionStatus(sess, now)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			strconv.Itoa(sess.SessionNumber),
			sess.Slug,
			sess.Title,
			sess.Date,
			string(status),
			sess.BookSlug,
		})
	}
	fmt.Println(renderTable([]string{"#", "Slug", "Title", "Date", "Status", "Book"}, rows))
	return nil
}
