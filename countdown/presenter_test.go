package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenterDeliversAndStopsOnCancel(t *testing.T) {
	// Pin the clock one minute before the target so every tick says the same
	// thing and the test never races midnight.
	fixed := time.Date(2025, 9, 8, 16, 29, 0, 0, time.UTC)
	p := NewPresenter("20:00 – 21:00", "2025-09-08", tehranOffset, "en",
		WithInterval(5*time.Millisecond),
		WithClock(func() time.Time { return fixed }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx)
	}()

	var got []Snapshot
	for snap := range p.Updates() {
		got = append(got, snap)
		if len(got) == 3 {
			cancel()
		}
	}

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	require.GreaterOrEqual(t, len(got), 3)
	for _, snap := range got {
		assert.False(t, snap.Expired)
		assert.Equal(t, "in 1 minutes", snap.Text)
	}

	// Closed channel: a follow-up receive does not block.
	_, open := <-p.Updates()
	assert.False(t, open)
}

func TestPresenterExpired(t *testing.T) {
	fixed := time.Date(2025, 9, 8, 18, 0, 0, 0, time.UTC)
	p := NewPresenter("20:00", "2025-09-08", tehranOffset, "en",
		WithInterval(5*time.Millisecond),
		WithClock(func() time.Time { return fixed }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	snap := <-p.Updates()
	assert.True(t, snap.Expired)
	assert.Equal(t, "The session has started", snap.Text)
}

func TestPresenterInertWithoutTimePrefix(t *testing.T) {
	p := NewPresenter("sometime in the evening", "2025-09-08", tehranOffset, "en")

	err := p.Run(context.Background())
	require.NoError(t, err)

	// No snapshot was ever sent and the channel is already closed.
	snap, open := <-p.Updates()
	assert.False(t, open)
	assert.Zero(t, snap)
}
