package site

import "bookclub-site/model"

// FindBookBySlug returns the first book whose slug matches, or nil when none
// does. Absence is a normal state: sessions may reference books that were
// never added, and the caller renders a "no related book" state.
func FindBookBySlug(books []*model.Book, slug string) *model.Book {
	if slug == "" {
		return nil
	}
	for _, book := range books {
		if book.Slug == slug {
			return book
		}
	}
	return nil
}

// SessionsForBook returns every session referencing the given book slug, in
// the order the content store supplied them.
func SessionsForBook(sessions []*model.Session, bookSlug string) []*model.Session {
	if bookSlug == "" {
		return nil
	}
	var related []*model.Session
	for _, sess := range sessions {
		if sess.BookSlug == bookSlug {
			related = append(related, sess)
		}
	}
	return related
}
