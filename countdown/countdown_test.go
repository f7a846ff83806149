package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The club meets on Tehran time, UTC+03:30.
const tehranOffset = 210

func TestTarget(t *testing.T) {
	target, ok, err := Target("20:00 – 21:00", "2025-09-08", tehranOffset)
	require.NoError(t, err)
	require.True(t, ok)

	// 20:00 at +03:30 is 16:30 UTC.
	assert.Equal(t, time.Date(2025, 9, 8, 16, 30, 0, 0, time.UTC), target.UTC())
}

func TestTargetNoTimePrefix(t *testing.T) {
	for _, raw := range []string{"", "evening", "8pm sharp", "8:00"} {
		_, ok, err := Target(raw, "2025-09-08", tehranOffset)
		require.NoError(t, err, "time %q", raw)
		assert.False(t, ok, "time %q", raw)
	}
}

func TestTargetMalformedDate(t *testing.T) {
	_, _, err := Target("20:00", "next tuesday", tehranOffset)
	require.Error(t, err)
}

func TestCompute(t *testing.T) {
	// Target instant: 2025-09-08 20:00 +03:30.
	target := time.Date(2025, 9, 8, 16, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		now  time.Time
		want State
	}{
		"one hour before": {
			now:  target.Add(-time.Hour),
			want: State{Active: true, Unit: UnitHour, Value: 1},
		},
		"ninety minutes before carries the remainder": {
			now:  target.Add(-90 * time.Minute),
			want: State{Active: true, Unit: UnitHour, Value: 1, ExtraMinutes: 30},
		},
		"three days before": {
			now:  target.Add(-72 * time.Hour),
			want: State{Active: true, Unit: UnitDay, Value: 3},
		},
		"under an hour": {
			now:  target.Add(-25 * time.Minute),
			want: State{Active: true, Unit: UnitMinute, Value: 25},
		},
		"final seconds": {
			now:  target.Add(-40 * time.Second),
			want: State{Active: true, Unit: UnitSecond, Value: 40},
		},
		"at the start instant": {
			now:  target,
			want: State{Active: true, Expired: true},
		},
		"one hour after": {
			now:  target.Add(time.Hour),
			want: State{Active: true, Expired: true},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Compute("20:00 – 21:00", "2025-09-08", tehranOffset, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeInertWithoutPrefix(t *testing.T) {
	got, err := Compute("evening", "2025-09-08", tehranOffset, time.Now())
	require.NoError(t, err)
	assert.Equal(t, State{}, got)
}

func TestFormatState(t *testing.T) {
	tests := map[string]struct {
		state State
		want  string
	}{
		"inactive": {State{}, ""},
		"expired":  {State{Active: true, Expired: true}, "The session has started"},
		"days":     {State{Active: true, Unit: UnitDay, Value: 3}, "in 3 days"},
		"hours":    {State{Active: true, Unit: UnitHour, Value: 2}, "in 2 hours"},
		"hours and minutes": {
			State{Active: true, Unit: UnitHour, Value: 1, ExtraMinutes: 30},
			"in 1 hours and 30 minutes",
		},
		"minutes": {State{Active: true, Unit: UnitMinute, Value: 12}, "in 12 minutes"},
		"seconds": {State{Active: true, Unit: UnitSecond, Value: 5}, "in 5 seconds"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatState("en", tc.state))
		})
	}
}
