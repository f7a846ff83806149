package model

import "fmt"

// MalformedDateError reports a session date that does not parse as an ISO
// calendar date. Date problems halt generation of the affected page instead of
// being silently read as "upcoming" or "held".
type MalformedDateError struct {
	Slug  string
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q on session %q: %v", e.Value, e.Slug, e.Err)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}
