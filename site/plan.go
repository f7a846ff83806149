package site

import (
	"fmt"
	"log/slog"

	"bookclub-site/model"
)

// PageKind distinguishes the two generated page templates.
type PageKind string

const (
	PageBook    PageKind = "book"
	PageSession PageKind = "session"
)

// PageContext is the data threaded to the per-page render step.
type PageContext struct {
	Slug     string
	BookSlug string
}

// PageSpec is one output page of the site: its URL path, which template
// renders it, and the lookup context the template needs.
type PageSpec struct {
	Path    string
	Kind    PageKind
	Context PageContext
}

// BuildPagePlan derives the full set of detail pages from the loaded records.
// Records with an empty slug are incomplete drafts and emit no page. Duplicate
// slugs within one kind keep the first record, so emitted paths never collide
// and the plan is deterministic for a given store ordering.
func BuildPagePlan(books []*model.Book, sessions []*model.Session) []PageSpec {
	plan := make([]PageSpec, 0, len(books)+len(sessions))
	seen := make(map[string]struct{}, len(books)+len(sessions))

	for _, book := range books {
		if book.Slug == "" {
			continue
		}
		path := fmt.Sprintf("/books/%s", book.Slug)
		if _, dup := seen[path]; dup {
			slog.Warn("duplicate book slug, keeping first", "slug", book.Slug)
			continue
		}
		seen[path] = struct{}{}
		plan = append(plan, PageSpec{
			Path:    path,
			Kind:    PageBook,
			Context: PageContext{Slug: book.Slug},
		})
	}

	for _, sess := range sessions {
		if sess.Slug == "" {
			continue
		}
		path := fmt.Sprintf("/sessions/%s", sess.Slug)
		if _, dup := seen[path]; dup {
			slog.Warn("duplicate session slug, keeping first", "slug", sess.Slug)
			continue
		}
		seen[path] = struct{}{}
		plan = append(plan, PageSpec{
			Path:    path,
			Kind:    PageSession,
			Context: PageContext{Slug: sess.Slug, BookSlug: sess.BookSlug},
		})
	}

	return plan
}
