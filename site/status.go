package site

import (
	"time"

	"bookclub-site/model"
)

// ResolveSessionStatus returns the effective status of a session at now.
// An explicitly authored status always wins, even when it disagrees with the
// date. Otherwise the session counts as held once its calendar date is
// strictly before now's calendar date, and as upcoming until then.
func ResolveSessionStatus(sess *model.Session, now time.Time) (model.SessionStatus, error) {
	if sess.Status != "" {
		return sess.Status, nil
	}

	date, err := time.Parse(model.DateLayout, sess.Date)
	if err != nil {
		return "", &model.MalformedDateError{Slug: sess.Slug, Value: sess.Date, Err: err}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return model.SessionHeld, nil
	}
	return model.SessionUpcoming, nil
}
