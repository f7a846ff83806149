package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-site/config"
	"bookclub-site/content"
	"bookclub-site/model"
)

func testStore() *content.Store {
	return &content.Store{
		Books: []*model.Book{
			{
				Slug:       "dune",
				Title:      "Dune",
				TitleFarsi: "تلماسه",
				Author:     "Frank Herbert",
				Year:       "1965",
				BookNumber: 1,
				Status:     model.BookCurrent,
				Body:       "A desert planet.\n\nSpice everywhere.",
				Links:      &model.BookLinks{GoodreadsEnglish: "https://goodreads.com/x"},
			},
		},
		Sessions: []*model.Session{
			{Slug: "session-1", Title: "Session 1", Date: "2025-09-01", BookSlug: "dune", SessionNumber: 1},
			{Slug: "session-2", Title: "Session 2", Date: "2025-09-15", BookSlug: "dune", SessionNumber: 2},
			{Slug: "session-orphan", Title: "Orphan", Date: "2025-09-20", BookSlug: "missing", SessionNumber: 3},
		},
		Meeting: &model.Meeting{
			Time:     "20:00 – 21:00",
			Timezone: "Tehran",
			MeetLink: "https://meet.example.com/club",
		},
	}
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "public")
	cfg.StaticDir = filepath.Join(t.TempDir(), "static")
	return cfg
}

func readPage(t *testing.T, cfg config.Config, rel string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, rel))
	require.NoError(t, err)
	return string(raw)
}

func TestRenderSite(t *testing.T) {
	cfg := testConfig(t)
	r, err := New(cfg)
	require.NoError(t, err)

	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	report, err := r.RenderSite(testStore(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.BookPages)
	assert.Equal(t, 3, report.SessionPages)
	assert.NotEmpty(t, report.BuildID)

	index := readPage(t, cfg, "index.html")
	assert.Contains(t, index, `dir="rtl"`)
	assert.Contains(t, index, "تلماسه")
	assert.Contains(t, index, `href="/books/dune/"`)
	assert.Contains(t, index, `"@type": "Organization"`)
	assert.Contains(t, index, report.BuildID)

	book := readPage(t, cfg, "books/dune/index.html")
	assert.Contains(t, book, "Frank Herbert")
	assert.Contains(t, book, `"@type": "Book"`)
	// Related sessions in number order.
	assert.Less(t,
		strings.Index(book, "/sessions/session-1/"),
		strings.Index(book, "/sessions/session-2/"))

	sess := readPage(t, cfg, "sessions/session-2/index.html")
	assert.Contains(t, sess, `"@type": "Event"`)
	assert.Contains(t, sess, "2025-09-15T20:00:00+03:30")
	assert.Contains(t, sess, "https://meet.example.com/club")

	// A session whose book slug does not resolve still renders.
	orphan := readPage(t, cfg, "sessions/session-orphan/index.html")
	assert.Contains(t, orphan, "Orphan")

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "404.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "sitemap.xml"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "style.css"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "site.webmanifest"))
}

func TestRenderSiteCopiesStatic(t *testing.T) {
	cfg := testConfig(t)
	coverDir := filepath.Join(cfg.StaticDir, "covers")
	require.NoError(t, os.MkdirAll(coverDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(coverDir, "dune.jpg"), []byte("jpg"), 0o644))

	r, err := New(cfg)
	require.NoError(t, err)
	_, err = r.RenderSite(testStore(), time.Now())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "static", "covers", "dune.jpg"))
}

func TestRenderSiteEmptyStore(t *testing.T) {
	cfg := testConfig(t)
	r, err := New(cfg)
	require.NoError(t, err)

	report, err := r.RenderSite(&content.Store{}, time.Now())
	require.NoError(t, err)
	assert.Zero(t, report.BookPages)
	assert.Zero(t, report.SessionPages)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "index.html"))
}

func TestLocalizeDigits(t *testing.T) {
	assert.Equal(t, "۱۳ کتاب", localizeDigits("fa", "13 کتاب"))
	assert.Equal(t, "13 books", localizeDigits("en", "13 books"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "۲۰۲۵/۰۹/۰۸", formatDate("fa", "2025-09-08"))
	assert.Equal(t, "2025/09/08", formatDate("en", "2025-09-08"))
	assert.Equal(t, "garbage", formatDate("fa", "garbage"))
}
