package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"bookclub-site/config"
	"bookclub-site/countdown"
	"bookclub-site/model"
)

// Schema is one schema.org JSON-LD document. Built as a plain map so optional
// fields can be omitted entirely instead of serialized empty.
type Schema map[string]any

// OrganizationSchema describes the club itself and is included on every page.
func OrganizationSchema(cfg config.Config) Schema {
	return Schema{
		"@context":     "https://schema.org",
		"@type":        "Organization",
		"name":         cfg.SiteTitle,
		"url":          cfg.SiteURL,
		"foundingDate": "2024",
		"address": Schema{
			"@type":          "PostalAddress",
			"addressCountry": "IR",
		},
	}
}

// BookSchema maps a book record to a schema.org Book.
func BookSchema(book *model.Book, cfg config.Config) Schema {
	s := Schema{
		"@context": "https://schema.org",
		"@type":    "Book",
		"name":     book.Title,
		"author":   Schema{"@type": "Person", "name": book.Author},
		"publisher": Schema{
			"@type": "Organization",
			"name":  cfg.SiteTitle,
			"url":   cfg.SiteURL,
		},
	}
	if len(book.Genre) > 0 {
		s["genre"] = book.Genre
	}
	if book.Language != "" {
		s["inLanguage"] = book.Language
	}
	if book.Pages != "" {
		s["numberOfPages"] = string(book.Pages)
	}
	if book.Year != "" {
		s["datePublished"] = string(book.Year)
	}
	if book.Translator != "" {
		s["translator"] = Schema{"@type": "Person", "name": book.Translator}
	}
	if book.CoverImage != "" {
		s["image"] = book.CoverImage
	}
	if book.Body != "" {
		s["description"] = Excerpt(book.Body, 500)
	}
	if links := sameAsLinks(book.Links); len(links) > 0 {
		s["sameAs"] = links
	}
	return s
}

func sameAsLinks(links *model.BookLinks) []string {
	if links == nil {
		return nil
	}
	var out []string
	for _, u := range []string{
		links.WikipediaFarsi, links.WikipediaEnglish, links.Wikisource,
		links.GoodreadsEnglish, links.GoodreadsFarsi,
	} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

func eventStatus(status model.SessionStatus) string {
	switch status {
	case model.SessionCancelled:
		return "EventCancelled"
	default:
		return "EventScheduled"
	}
}

// EventSchema maps a session to a schema.org Event. The start instant uses
// the meeting time and the configured fixed UTC offset; the related book, when
// resolved, is attached as the event's subject.
func EventSchema(sess *model.Session, book *model.Book, meeting *model.Meeting, status model.SessionStatus, cfg config.Config) Schema {
	s := Schema{
		"@context":  "https://schema.org",
		"@type":     "Event",
		"name":      sess.Title,
		"startDate": eventStartDate(sess, meeting, cfg.UTCOffsetMinutes),
		"eventStatus": fmt.Sprintf("https://schema.org/%s",
			eventStatus(status)),
		"eventAttendanceMode": "https://schema.org/OnlineEventAttendanceMode",
		"organizer": Schema{
			"@type": "Organization",
			"name":  cfg.SiteTitle,
			"url":   cfg.SiteURL,
		},
	}
	if sess.Body != "" {
		s["description"] = Excerpt(sess.Body, 800)
	}
	if book != nil {
		s["about"] = BookSchema(book, cfg)
	}
	return s
}

// eventStartDate composes an ISO-8601 start instant from the meeting time's
// HH:MM prefix. Without a usable meeting time the calendar date alone stands.
func eventStartDate(sess *model.Session, meeting *model.Meeting, utcOffsetMinutes int) string {
	if meeting != nil {
		target, ok, err := countdown.Target(meeting.Time, sess.Date, utcOffsetMinutes)
		if err == nil && ok {
			return target.Format(time.RFC3339)
		}
	}
	return sess.Date
}

// MarshalSchemas renders schemas as script-ready JSON blocks.
func MarshalSchemas(schemas ...Schema) ([]template.JS, error) {
	out := make([]template.JS, 0, len(schemas))
	for _, s := range schemas {
		raw, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json-ld: %w", err)
		}
		out = append(out, template.JS(raw))
	}
	return out, nil
}
