package model

// DateLayout is the calendar-date format used by session frontmatter.
const DateLayout = "2006-01-02"

// SessionStatus is the lifecycle state of a discussion session. When the
// authored status is empty it is derived from the session date, see
// site.ResolveSessionStatus.
type SessionStatus string

const (
	SessionUpcoming  SessionStatus = "upcoming"
	SessionHeld      SessionStatus = "held"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is one discussion-session record loaded from content/sessions.
// BookSlug is a weak reference to a Book's slug: the join is a lookup, never a
// pointer, and it is allowed to not resolve.
type Session struct {
	Slug           string        `yaml:"slug"`
	Title          string        `yaml:"title"`
	Date           string        `yaml:"date"`
	BookSlug       string        `yaml:"bookSlug"`
	SessionNumber  int           `yaml:"sessionNumber"`
	Attendees      []string      `yaml:"attendees,omitempty"`
	KeyDiscussions []string      `yaml:"keyDiscussions,omitempty"`
	NextActions    []string      `yaml:"nextActions,omitempty"`
	Status         SessionStatus `yaml:"status,omitempty"`

	// Body is the session summary text below the frontmatter.
	Body string `yaml:"-"`
}
