package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, data string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestSite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "style.css", "body{}")
	writeFile(t, dir, "books/dune/index.html", "<html></html>")
	writeFile(t, dir, "static/covers/dune.jpg", "jpg")
	writeFile(t, dir, "index.html", `<html><body>
<a href="/books/dune/">ok, pretty url</a>
<a href="/books/missing/">broken</a>
<a href="https://example.com/external">external, ignored</a>
<a href="//cdn.example.com/x">protocol-relative, ignored</a>
<a href="#fragment">fragment, ignored</a>
<img src="/static/covers/dune.jpg">
<img src="/static/covers/none.jpg">
<link rel="stylesheet" href="/style.css">
<a href="/books/dune/?ref=home">query string stripped</a>
</body></html>`)

	issues, err := Site(dir)
	require.NoError(t, err)

	got := make([]string, 0, len(issues))
	for _, issue := range issues {
		got = append(got, issue.Link)
	}
	assert.ElementsMatch(t, []string{"/books/missing/", "/static/covers/none.jpg"}, got)
	for _, issue := range issues {
		assert.Equal(t, "index.html", issue.Page)
	}
}

func TestSiteCleanOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<html><a href="/about/">x</a></html>`)
	writeFile(t, dir, "about/index.html", "<html></html>")

	issues, err := Site(dir)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
