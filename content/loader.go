// Package content reads the authored content directory: book and session
// documents with YAML frontmatter, plus the singleton meeting record. The
// loaded store is the immutable input for one build; nothing here writes back.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"bookclub-site/model"
)

// Store is one build's snapshot of the content directory. Collections keep
// lexical file order so repeated builds see the same store ordering.
type Store struct {
	Books    []*model.Book
	Sessions []*model.Session
	Meeting  *model.Meeting
}

// Load reads books/, sessions/ and constants/meeting.yml under dir. A session
// whose date does not parse as a calendar date fails the load with
// MalformedDateError: emitting a page with a misread schedule is worse than
// failing the build.
func Load(dir string) (*Store, error) {
	store := &Store{}

	bookFiles, err := filepath.Glob(filepath.Join(dir, "books", "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	for _, file := range bookFiles {
		book, err := loadBook(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		if book.Slug == "" {
			slog.Warn("book has no slug, it will emit no page", "file", file)
		}
		store.Books = append(store.Books, book)
	}

	sessionFiles, err := filepath.Glob(filepath.Join(dir, "sessions", "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, file := range sessionFiles {
		sess, err := loadSession(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		if sess.Slug == "" {
			slog.Warn("session has no slug, it will emit no page", "file", file)
		}
		store.Sessions = append(store.Sessions, sess)
	}

	meeting, err := loadMeeting(filepath.Join(dir, "constants", "meeting.yml"))
	if err != nil {
		return nil, err
	}
	store.Meeting = meeting

	return store, nil
}

func loadBook(path string) (*model.Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	book := &model.Book{}
	body, err := splitFrontmatter(raw, book)
	if err != nil {
		return nil, err
	}
	book.Body = body
	return book, nil
}

func loadSession(path string) (*model.Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sess := &model.Session{}
	body, err := splitFrontmatter(raw, sess)
	if err != nil {
		return nil, err
	}
	sess.Body = body

	if _, err := time.Parse(model.DateLayout, sess.Date); err != nil {
		return nil, &model.MalformedDateError{Slug: sess.Slug, Value: sess.Date, Err: err}
	}
	return sess, nil
}

// loadMeeting reads the singleton meeting record. The file is optional: a
// site without meeting constants simply renders no meeting block.
func loadMeeting(path string) (*model.Meeting, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read meeting info: %w", err)
	}
	meeting := &model.Meeting{}
	if err := yaml.Unmarshal(raw, meeting); err != nil {
		return nil, fmt.Errorf("failed to decode meeting info: %w", err)
	}
	return meeting, nil
}
