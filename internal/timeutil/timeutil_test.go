package timeutil_test

import (
	"testing"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/timeutil"
	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	t.Run("same calendar day is zero regardless of time of day", func(t *testing.T) {
		a := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)
		b := time.Date(2026, 3, 10, 23, 55, 0, 0, time.UTC)
		assert.Equal(t, 0, timeutil.DaysBetween(a, b))
		assert.Equal(t, 0, timeutil.DaysBetween(b, a))
	})

	t.Run("crossing midnight counts a full day", func(t *testing.T) {
		a := time.Date(2026, 3, 10, 23, 55, 0, 0, time.UTC)
		b := time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC)
		assert.Equal(t, 1, timeutil.DaysBetween(a, b))
	})

	t.Run("positive span", func(t *testing.T) {
		a := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		b := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, 7, timeutil.DaysBetween(a, b))
	})

	t.Run("negative span", func(t *testing.T) {
		a := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
		b := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
		assert.Equal(t, -3, timeutil.DaysBetween(a, b))
	})

	t.Run("spans a month boundary", func(t *testing.T) {
		a := time.Date(2026, 1, 30, 10, 0, 0, 0, time.UTC)
		b := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, 3, timeutil.DaysBetween(a, b))
	})
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 5, 14, 17, 42, 31, 999, time.UTC)
	got := timeutil.StartOfDay(ts)
	assert.Equal(t, time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-25 * time.Minute), "25m ago"},
		{"hours ago", now.Add(-5 * time.Hour), "5h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"days ago", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"old entries fall back to date", now.Add(-45 * 24 * time.Hour), "1 May"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeutil.RelativeLabel(tt.t, now))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 1, 12, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "12 Jan 2026", timeutil.FormatDate(ts))
	assert.Equal(t, "12 Jan 2026, 15:04", timeutil.FormatDateTime(ts))
}
