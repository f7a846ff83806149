// Package covers mirrors remote cover images into the static directory so the
// published site serves them itself. Downloads are skipped when the file is
// already present, so re-runs only fetch new covers.
package covers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"bookclub-site/model"
)

// Download fetches every remote cover referenced by the books into destDir,
// named after the book slug. It returns how many files were actually fetched.
func Download(books []*model.Book, destDir string) (int, error) {
	client := newClient()
	fetched := 0

	for _, book := range books {
		coverURL := book.CoverImage
		if book.Slug == "" || !isRemote(coverURL) {
			continue
		}

		ext := path.Ext(coverURL)
		if idx := strings.IndexAny(ext, "?#"); idx >= 0 {
			ext = ext[:idx]
		}
		if ext == "" {
			ext = ".jpg"
		}
		dest := filepath.Join(destDir, "covers", book.Slug+ext)

		if _, err := os.Stat(dest); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fetched, fmt.Errorf("failed to create covers directory: %w", err)
		}

		slog.Info("downloading cover", "book", book.Slug, "url", coverURL)
		resp, err := client.R().Get(coverURL)
		if err != nil {
			return fetched, fmt.Errorf("failed to download cover for %s: %w", book.Slug, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return fetched, fmt.Errorf("failed to download cover for %s: %s", book.Slug, resp.Status())
		}
		if err := os.WriteFile(dest, resp.Body(), 0644); err != nil {
			return fetched, fmt.Errorf("failed to write cover for %s: %w", book.Slug, err)
		}
		fetched++
	}

	return fetched, nil
}

func isRemote(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
