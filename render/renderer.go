// Package render turns one loaded content store into the generated site: the
// index page, one page per book and session, the 404 page, the sitemap and
// the shared assets.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookclub-site/config"
	"bookclub-site/content"
	"bookclub-site/locale"
	"bookclub-site/model"
	"bookclub-site/site"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Report summarizes one build.
type Report struct {
	BuildID      string
	BookPages    int
	SessionPages int
	OutputDir    string
	Duration     time.Duration
}

// Renderer renders a content store into an output directory. It is stateless
// between builds apart from the parsed templates.
type Renderer struct {
	cfg  config.Config
	tmpl *template.Template
}

func New(cfg config.Config) (*Renderer, error) {
	funcs := template.FuncMap{
		"t": func(key string) string { return locale.T(cfg.Lang, key) },
		"digits": func(v any) string {
			return localizeDigits(cfg.Lang, fmt.Sprint(v))
		},
		"fdate": func(iso string) string { return formatDate(cfg.Lang, iso) },
		"bookStatusLabel": func(status model.BookStatus) string {
			switch status {
			case model.BookUpcoming, model.BookCurrent, model.BookCompleted:
				return locale.T(cfg.Lang, "status.book."+string(status))
			default:
				return locale.T(cfg.Lang, "common.unknown")
			}
		},
		"sessionStatusLabel": func(status model.SessionStatus) string {
			switch status {
			case model.SessionUpcoming, model.SessionHeld, model.SessionCancelled:
				return locale.T(cfg.Lang, "status.session."+string(status))
			default:
				return locale.T(cfg.Lang, "common.unknown")
			}
		},
		"paragraphs": Paragraphs,
	}

	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{cfg: cfg, tmpl: tmpl}, nil
}

// head is the data every page's <head> partial consumes.
type head struct {
	Lang        string
	Dir         string
	Title       string
	Description string
	Canonical   string
	Image       string
	SiteTitle   string
	BuildID     string
	Article     bool
	JSONLD      []template.JS
}

type indexData struct {
	Head    head
	View    *site.IndexView
	Meeting *model.Meeting
}

type bookData struct {
	Head     head
	Book     *model.Book
	Sessions []*model.Session
}

type sessionData struct {
	Head    head
	Session *model.Session
	Status  model.SessionStatus
	Book    *model.Book
	Meeting *model.Meeting
}

type notFoundData struct {
	Head head
}

// RenderSite generates the whole site from the store at a single now
// snapshot, so every page of one build agrees on session statuses.
func (r *Renderer) RenderSite(store *content.Store, now time.Time) (*Report, error) {
	started := time.Now()

	buildID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate build id: %w", err)
	}

	plan := site.BuildPagePlan(store.Books, store.Sessions)
	view, err := site.BuildIndexView(store.Books, store.Sessions, now)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &Report{BuildID: buildID.String(), OutputDir: r.cfg.OutputDir}

	if err := r.renderIndex(view, store.Meeting, report.BuildID); err != nil {
		return nil, err
	}

	for _, spec := range plan {
		switch spec.Kind {
		case site.PageBook:
			if err := r.renderBookPage(spec, store, report.BuildID); err != nil {
				return nil, err
			}
			report.BookPages++
		case site.PageSession:
			if err := r.renderSessionPage(spec, store, now, report.BuildID); err != nil {
				return nil, err
			}
			report.SessionPages++
		}
	}

	if err := r.renderNotFound(report.BuildID); err != nil {
		return nil, err
	}

	sitemapPath := filepath.Join(r.cfg.OutputDir, "sitemap.xml")
	if err := WriteSitemap(sitemapPath, r.cfg.SiteURL, plan, now.Format(model.DateLayout)); err != nil {
		return nil, err
	}

	if err := r.copyAssets(); err != nil {
		return nil, err
	}
	if err := r.copyStatic(); err != nil {
		return nil, err
	}

	report.Duration = time.Since(started)
	slog.Info("site rendered",
		"books", report.BookPages,
		"sessions", report.SessionPages,
		"output", report.OutputDir,
		"build_id", report.BuildID)
	return report, nil
}

func (r *Renderer) newHead(title, description, path, image, buildID string) head {
	dir := "ltr"
	if r.cfg.Lang == "fa" {
		dir = "rtl"
	}
	if image == "" {
		image = strings.TrimSuffix(r.cfg.SiteURL, "/") + "/favicon/android-chrome-512x512.png"
	}
	return head{
		Lang:        r.cfg.Lang,
		Dir:         dir,
		Title:       title,
		Description: description,
		Canonical:   strings.TrimSuffix(r.cfg.SiteURL, "/") + path,
		Image:       image,
		SiteTitle:   r.cfg.SiteTitle,
		BuildID:     buildID,
	}
}

func (r *Renderer) renderIndex(view *site.IndexView, meeting *model.Meeting, buildID string) error {
	jsonld, err := MarshalSchemas(OrganizationSchema(r.cfg))
	if err != nil {
		return err
	}
	h := r.newHead(r.cfg.SiteTitle, locale.T(r.cfg.Lang, "index.tagline"), "/", "", buildID)
	h.JSONLD = jsonld
	return r.writePage("index.html", "index", indexData{Head: h, View: view, Meeting: meeting})
}

func (r *Renderer) renderBookPage(spec site.PageSpec, store *content.Store, buildID string) error {
	book := site.FindBookBySlug(store.Books, spec.Context.Slug)
	if book == nil {
		return fmt.Errorf("page plan references unknown book %q", spec.Context.Slug)
	}

	related := site.SessionsForBook(store.Sessions, book.Slug)
	sort.SliceStable(related, func(i, j int) bool {
		return related[i].SessionNumber < related[j].SessionNumber
	})

	jsonld, err := MarshalSchemas(OrganizationSchema(r.cfg), BookSchema(book, r.cfg))
	if err != nil {
		return err
	}
	h := r.newHead(book.DisplayTitle(), Excerpt(book.Body, 160), spec.Path, book.CoverImage, buildID)
	h.Article = true
	h.JSONLD = jsonld

	out := filepath.Join(filepath.FromSlash(strings.TrimPrefix(spec.Path, "/")), "index.html")
	return r.writePage(out, "book", bookData{Head: h, Book: book, Sessions: related})
}

func (r *Renderer) renderSessionPage(spec site.PageSpec, store *content.Store, now time.Time, buildID string) error {
	var sess *model.Session
	for _, s := range store.Sessions {
		if s.Slug == spec.Context.Slug {
			sess = s
			break
		}
	}
	if sess == nil {
		return fmt.Errorf("page plan references unknown session %q", spec.Context.Slug)
	}

	status, err := site.ResolveSessionStatus(sess, now)
	if err != nil {
		return err
	}
	book := site.FindBookBySlug(store.Books, sess.BookSlug)

	jsonld, err := MarshalSchemas(
		OrganizationSchema(r.cfg),
		EventSchema(sess, book, store.Meeting, status, r.cfg))
	if err != nil {
		return err
	}
	h := r.newHead(sess.Title, Excerpt(sess.Body, 160), spec.Path, "", buildID)
	h.Article = true
	h.JSONLD = jsonld

	out := filepath.Join(filepath.FromSlash(strings.TrimPrefix(spec.Path, "/")), "index.html")
	return r.writePage(out, "session", sessionData{
		Head:    h,
		Session: sess,
		Status:  status,
		Book:    book,
		Meeting: store.Meeting,
	})
}

func (r *Renderer) renderNotFound(buildID string) error {
	jsonld, err := MarshalSchemas(OrganizationSchema(r.cfg))
	if err != nil {
		return err
	}
	h := r.newHead(locale.T(r.cfg.Lang, "notFound.title"), locale.T(r.cfg.Lang, "notFound.message"), "/404", "", buildID)
	h.JSONLD = jsonld
	return r.writePage("404.html", "notfound", notFoundData{Head: h})
}

func (r *Renderer) writePage(relPath, name string, data any) error {
	path := filepath.Join(r.cfg.OutputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create page directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create page file: %w", err)
	}
	defer file.Close()

	if err := r.tmpl.ExecuteTemplate(file, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", relPath, err)
	}
	return nil
}

// copyAssets writes the embedded stylesheet and web manifest into the output
// root.
func (r *Renderer) copyAssets() error {
	return fs.WalkDir(assetFS, "assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := assetFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read asset: %w", err)
		}
		out := filepath.Join(r.cfg.OutputDir, strings.TrimPrefix(path, "assets/"))
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("failed to create asset directory: %w", err)
		}
		if err := os.WriteFile(out, raw, 0644); err != nil {
			return fmt.Errorf("failed to write asset: %w", err)
		}
		return nil
	})
}

// copyStatic mirrors the static directory (cover images etc) into the output
// under /static. A missing static directory is fine.
func (r *Renderer) copyStatic() error {
	info, err := os.Stat(r.cfg.StaticDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat static directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static path %s is not a directory", r.cfg.StaticDir)
	}

	return filepath.Walk(r.cfg.StaticDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(r.cfg.StaticDir, path)
		if err != nil {
			return err
		}
		out := filepath.Join(r.cfg.OutputDir, "static", rel)
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := os.Create(out)
		if err != nil {
			return err
		}
		defer dst.Close()
		_, err = io.Copy(dst, src)
		return err
	})
}

var persianDigits = map[rune]rune{
	'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
	'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
}

func localizeDigits(lang, s string) string {
	if lang != "fa" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if p, ok := persianDigits[r]; ok {
			return p
		}
		return r
	}, s)
}

// formatDate renders an ISO calendar date for display, with localized digits.
// Dates that fail to parse are shown verbatim.
func formatDate(lang, iso string) string {
	date, err := time.Parse(model.DateLayout, iso)
	if err != nil {
		return iso
	}
	return localizeDigits(lang, date.Format("2006/01/02"))
}
