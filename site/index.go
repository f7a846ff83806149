package site

import (
	"sort"
	"time"

	"bookclub-site/model"
)

// pastSessionLimit caps the past-session list on the home page.
const pastSessionLimit = 10

// SessionEntry is a session prepared for the home page: its resolved status
// and its related book, when the slug resolves.
type SessionEntry struct {
	Session *model.Session
	Status  model.SessionStatus
	Book    *model.Book
}

// IndexView is the home-page view model.
type IndexView struct {
	SortedBooks      []*model.Book
	UpcomingSessions []SessionEntry
	PastSessions     []SessionEntry
}

func bookStatusRank(status model.BookStatus) int {
	switch status {
	case model.BookCurrent:
		return 0
	case model.BookUpcoming:
		return 1
	case model.BookCompleted:
		return 2
	default:
		return 3
	}
}

// SortBooks orders books by status tier (current, upcoming, completed, other)
// and by bookNumber descending inside a tier, so the most recently numbered
// book leads its tier. The input is not modified.
func SortBooks(books []*model.Book) []*model.Book {
	sorted := make([]*model.Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := bookStatusRank(sorted[i].Status), bookStatusRank(sorted[j].Status)
		if ri != rj {
			return ri < rj
		}
		return sorted[i].BookNumber > sorted[j].BookNumber
	})
	return sorted
}

// BuildIndexView aggregates the home-page view model. Every session status is
// resolved against the same now snapshot so one aggregation never mixes
// "before midnight" and "after midnight" answers. Past sessions are ordered by
// sessionNumber descending and truncated to the display limit.
func BuildIndexView(books []*model.Book, sessions []*model.Session, now time.Time) (*IndexView, error) {
	view := &IndexView{SortedBooks: SortBooks(books)}

	for _, sess := range sessions {
		status, err := ResolveSessionStatus(sess, now)
		if err != nil {
			return nil, err
		}
		entry := SessionEntry{
			Session: sess,
			Status:  status,
			Book:    FindBookBySlug(books, sess.BookSlug),
		}
		if status == model.SessionUpcoming {
			view.UpcomingSessions = append(view.UpcomingSessions, entry)
		} else {
			view.PastSessions = append(view.PastSessions, entry)
		}
	}

	sort.SliceStable(view.PastSessions, func(i, j int) bool {
		return view.PastSessions[i].Session.SessionNumber > view.PastSessions[j].Session.SessionNumber
	})
	if len(view.PastSessions) > pastSessionLimit {
		view.PastSessions = view.PastSessions[:pastSessionLimit]
	}

	return view, nil
}
