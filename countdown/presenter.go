package countdown

import (
	"context"
	"time"

	"bookclub-site/locale"
)

// Snapshot is one presenter tick, ready for display.
type Snapshot struct {
	Expired bool
	Text    string
}

// Presenter re-evaluates a session countdown on a fixed cadence and delivers
// display snapshots until its context is canceled. Each displayed view owns
// its own presenter; there is no shared state between instances.
type Presenter struct {
	meetingTime      string
	sessionDate      string
	utcOffsetMinutes int
	lang             string

	interval time.Duration
	now      func() time.Time
	updates  chan Snapshot
}

// Option adjusts presenter behavior, used by tests to shorten the cadence and
// pin the clock.
type Option func(*Presenter)

func WithInterval(d time.Duration) Option {
	return func(p *Presenter) { p.interval = d }
}

func WithClock(now func() time.Time) Option {
	return func(p *Presenter) { p.now = now }
}

func NewPresenter(meetingTime, sessionDate string, utcOffsetMinutes int, lang string, opts ...Option) *Presenter {
	p := &Presenter{
		meetingTime:      meetingTime,
		sessionDate:      sessionDate,
		utcOffsetMinutes: utcOffsetMinutes,
		lang:             lang,
		interval:         time.Second,
		now:              time.Now,
		updates:          make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Updates delivers one snapshot per tick. The channel is closed when Run
// returns; nothing is ever sent after cancellation.
func (p *Presenter) Updates() <-chan Snapshot {
	return p.updates
}

// Run evaluates once immediately, then once per interval, until ctx is
// canceled. When the meeting time string carries no HH:MM prefix the
// presenter is inert: it returns at once without a single snapshot.
func (p *Presenter) Run(ctx context.Context) error {
	defer close(p.updates)

	send := func() (bool, error) {
		state, err := Compute(p.meetingTime, p.sessionDate, p.utcOffsetMinutes, p.now())
		if err != nil {
			return false, err
		}
		if !state.Active {
			return false, nil
		}
		snap := Snapshot{Expired: state.Expired, Text: FormatState(p.lang, state)}
		select {
		case p.updates <- snap:
		case <-ctx.Done():
			return false, ctx.Err()
		}
		return true, nil
	}

	active, err := send()
	if err != nil || !active {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := send(); err != nil {
				return err
			}
		}
	}
}

// FormatState renders a state as the locale's relative-time phrase. Expired
// states use the "session started" message.
func FormatState(lang string, state State) string {
	if !state.Active {
		return ""
	}
	if state.Expired {
		return locale.T(lang, "session.started")
	}
	switch state.Unit {
	case UnitDay:
		return locale.N(lang, "countdown.days", state.Value)
	case UnitHour:
		if state.ExtraMinutes > 0 {
			return locale.N2(lang, "countdown.hoursMinutes", state.Value, state.ExtraMinutes)
		}
		return locale.N(lang, "countdown.hours", state.Value)
	case UnitMinute:
		return locale.N(lang, "countdown.minutes", state.Value)
	default:
		return locale.N(lang, "countdown.seconds", state.Value)
	}
}
