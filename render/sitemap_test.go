package render

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-site/site"
)

func TestWriteSitemap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sitemap.xml")
	plan := []site.PageSpec{
		{Path: "/books/dune"},
		{Path: "/sessions/session-1"},
	}

	require.NoError(t, WriteSitemap(path, "https://example.com/", plan, "2025-09-08"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), xml.Header)

	var set URLSet
	require.NoError(t, xml.Unmarshal(raw, &set))
	require.Len(t, set.URLs, 3)
	assert.Equal(t, "https://example.com/", set.URLs[0].Loc)
	assert.Equal(t, "https://example.com/books/dune/", set.URLs[1].Loc)
	assert.Equal(t, "https://example.com/sessions/session-1/", set.URLs[2].Loc)
	for _, u := range set.URLs {
		assert.Equal(t, "2025-09-08", u.LastMod)
	}
}
