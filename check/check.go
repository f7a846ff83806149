// Package check validates a generated site: every internal link and image in
// the emitted HTML must resolve to an emitted file.
package check

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Issue is one broken internal reference.
type Issue struct {
	Page string
	Link string
}

// Site walks the output directory, parses each HTML page and reports internal
// links that do not resolve. External links, fragments and mailto links are
// not checked.
func Site(outputDir string) ([]Issue, error) {
	var issues []Issue

	err := filepath.WalkDir(outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".html" {
			return err
		}

		page, err := filepath.Rel(outputDir, path)
		if err != nil {
			return err
		}
		pageIssues, err := checkPage(outputDir, path, page)
		if err != nil {
			return err
		}
		issues = append(issues, pageIssues...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk output directory: %w", err)
	}
	return issues, nil
}

func checkPage(outputDir, path, page string) ([]Issue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", page, err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", page, err)
	}

	var issues []Issue
	record := func(ref string) {
		if !isInternal(ref) {
			return
		}
		if !targetExists(outputDir, ref) {
			issues = append(issues, Issue{Page: page, Link: ref})
		}
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		record(s.AttrOr("href", ""))
	})
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		record(s.AttrOr("src", ""))
	})
	doc.Find("link").Each(func(_ int, s *goquery.Selection) {
		record(s.AttrOr("href", ""))
	})
	return issues, nil
}

func isInternal(ref string) bool {
	return strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//")
}

// targetExists accepts a path that is an emitted file, or a directory holding
// an index.html (the pretty-URL form detail pages use).
func targetExists(outputDir, ref string) bool {
	if idx := strings.IndexAny(ref, "?#"); idx >= 0 {
		ref = ref[:idx]
	}
	target := filepath.Join(outputDir, filepath.FromSlash(strings.Trim(ref, "/")))

	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		return true
	}
	if err == nil && info.IsDir() {
		_, err = os.Stat(filepath.Join(target, "index.html"))
		return err == nil
	}
	return false
}
