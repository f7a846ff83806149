// Package countdown derives the time remaining until a session's start
// instant. The computation is pure; Presenter adds the once-per-second
// re-evaluation tied to a view's lifetime.
package countdown

import (
	"regexp"
	"time"

	"bookclub-site/model"
)

// Unit is the single display unit selected for the remaining time.
type Unit string

const (
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"
)

// State is the display-only result of one countdown evaluation.
//
// A zero State (Active false) means no countdown is shown at all: the meeting
// time string did not carry an HH:MM prefix. That is a display degradation,
// not an error.
type State struct {
	Active  bool
	Expired bool
	Unit    Unit
	Value   int
	// ExtraMinutes carries the minutes remainder when Unit is UnitHour, for
	// the combined "N hours and M minutes" phrasing under a day.
	ExtraMinutes int
}

var timePrefix = regexp.MustCompile(`^(\d{2}):(\d{2})`)

// Target composes the session's start instant from its calendar date, the
// HH:MM prefix of the meeting time string, and the club's fixed UTC offset in
// minutes. The second return is false when the time string has no HH:MM
// prefix.
func Target(meetingTime, sessionDate string, utcOffsetMinutes int) (time.Time, bool, error) {
	match := timePrefix.FindStringSubmatch(meetingTime)
	if match == nil {
		return time.Time{}, false, nil
	}

	zone := time.FixedZone("club", utcOffsetMinutes*60)
	target, err := time.ParseInLocation("2006-01-02 15:04", sessionDate+" "+match[0], zone)
	if err != nil {
		return time.Time{}, false, &model.MalformedDateError{Value: sessionDate, Err: err}
	}
	return target, true, nil
}

// Compute evaluates the countdown at now. Once the target instant has passed
// the state is expired and carries no remaining unit; until then the largest
// non-zero unit wins, with hours additionally carrying the minutes remainder.
func Compute(meetingTime, sessionDate string, utcOffsetMinutes int, now time.Time) (State, error) {
	target, ok, err := Target(meetingTime, sessionDate, utcOffsetMinutes)
	if err != nil {
		return State{}, err
	}
	if !ok {
		return State{}, nil
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		return State{Active: true, Expired: true}, nil
	}

	seconds := int(remaining / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	state := State{Active: true}
	switch {
	case days > 0:
		state.Unit = UnitDay
		state.Value = days
	case hours > 0:
		state.Unit = UnitHour
		state.Value = hours
		state.ExtraMinutes = minutes % 60
	case minutes > 0:
		state.Unit = UnitMinute
		state.Value = minutes
	default:
		state.Unit = UnitSecond
		state.Value = seconds
	}
	return state, nil
}
