package covers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-site/model"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/covers/dune.jpg" {
			w.Write([]byte("jpeg-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	dir := t.TempDir()
	books := []*model.Book{
		{Slug: "dune", CoverImage: server.URL + "/covers/dune.jpg"},
		{Slug: "local", CoverImage: "/static/covers/local.jpg"},
		{Slug: "bare"},
		{CoverImage: server.URL + "/covers/no-slug.jpg"},
	}

	fetched, err := Download(books, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)

	raw, err := os.ReadFile(filepath.Join(dir, "covers", "dune.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(raw))

	// Re-running skips the already-present file.
	fetched, err = Download(books, dir)
	require.NoError(t, err)
	assert.Zero(t, fetched)
}

func TestDownloadFailsOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	books := []*model.Book{{Slug: "gone", CoverImage: server.URL + "/gone.png"}}
	_, err := Download(books, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
}

func TestIsRemote(t *testing.T) {
	assert.True(t, isRemote("https://example.com/a.jpg"))
	assert.True(t, isRemote("http://example.com/a.jpg"))
	assert.False(t, isRemote("/static/covers/a.jpg"))
	assert.False(t, isRemote(""))
	assert.False(t, isRemote("ftp://example.com/a.jpg"))
}
