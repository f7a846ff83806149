package locale

var en = map[string]string{
	"common.author":     "Author",
	"common.translator": "Translator",
	"common.year":       "Published",
	"common.language":   "Language",
	"common.pages":      "Pages",
	"common.genre":      "Genre",
	"common.book":       "Book",
	"common.session":    "Session",
	"common.timezone":   "Timezone",
	"common.backHome":   "Back to home",
	"common.unknown":    "Unknown",

	"index.books":          "Books",
	"index.recentSessions": "Recent sessions",
	"index.tagline":        "A new book every week",

	"book.about":           "About the book",
	"book.links":           "Links and resources",
	"book.relatedSessions": "Related sessions",

	"links.wikipediaFarsi":   "Wikipedia (Farsi)",
	"links.wikipediaEnglish": "Wikipedia (English)",
	"links.wikisource":       "Wikisource",
	"links.goodreadsEnglish": "Goodreads (English)",
	"links.goodreadsFarsi":   "Goodreads (Farsi)",
	"links.audiobook":        "Audiobook",

	"session.relatedBook":    "Related book",
	"session.viewBook":       "View book",
	"session.viewBookDetail": "View book details",
	"session.attendees":      "Attendees",
	"session.keyDiscussions": "Key discussions",
	"session.nextActions":    "Next actions",
	"session.started":        "The session has started",
	"session.meetLink":       "Video call link",

	"status.book.completed": "Completed",
	"status.book.current":   "Currently reading",
	"status.book.upcoming":  "Upcoming",
	"status.session.held":      "Held",
	"status.session.upcoming":  "Upcoming",
	"status.session.cancelled": "Cancelled",

	"countdown.days":         "in %d days",
	"countdown.hours":        "in %d hours",
	"countdown.hoursMinutes": "in %d hours and %d minutes",
	"countdown.minutes":      "in %d minutes",
	"countdown.seconds":      "in %d seconds",

	"notFound.title":   "Page not found",
	"notFound.message": "There is no such page.",
}
