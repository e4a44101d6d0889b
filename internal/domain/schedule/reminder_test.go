//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"classbook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestClassifyReminder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sent := now.Add(-time.Hour)

	startIn := func(d time.Duration) *time.Time {
		s := now.Add(d)
		return &s
	}

	cases := []struct {
		name    string
		start   *time.Time
		sent24h *time.Time
		sent1h  *time.Time
		want    schedule.ReminderKind
	}{
		{name: "nil start", start: nil, want: schedule.ReminderNone},
		{name: "zero start", start: &time.Time{}, want: schedule.ReminderNone},

		// 24h window is the closed interval [23h, 25h].
		{name: "just below 24h window", start: startIn(23*time.Hour - time.Second), want: schedule.ReminderNone},
		{name: "24h window lower edge", start: startIn(23 * time.Hour), want: schedule.Reminder24h},
		{name: "exactly 24h out", start: startIn(24 * time.Hour), want: schedule.Reminder24h},
		{name: "24h window upper edge", start: startIn(25 * time.Hour), want: schedule.Reminder24h},
		{name: "just above 24h window", start: startIn(25*time.Hour + time.Second), want: schedule.ReminderNone},

		// 1h window is the closed interval [45m, 75m].
		{name: "just below 1h window", start: startIn(45*time.Minute - time.Second), want: schedule.ReminderNone},
		{name: "1h window lower edge", start: startIn(45 * time.Minute), want: schedule.Reminder1h},
		{name: "exactly 1h out", start: startIn(time.Hour), want: schedule.Reminder1h},
		{name: "1h window upper edge", start: startIn(75 * time.Minute), want: schedule.Reminder1h},
		{name: "just above 1h window", start: startIn(75*time.Minute + time.Second), want: schedule.ReminderNone},

		{name: "between the windows", start: startIn(12 * time.Hour), want: schedule.ReminderNone},
		{name: "already started", start: startIn(-time.Minute), want: schedule.ReminderNone},

		// Send guards suppress re-sends, independently per kind.
		{name: "24h already sent", start: startIn(24 * time.Hour), sent24h: &sent, want: schedule.ReminderNone},
		{name: "1h already sent", start: startIn(time.Hour), sent1h: &sent, want: schedule.ReminderNone},
		{name: "1h due even though 24h was sent", start: startIn(time.Hour), sent24h: &sent, want: schedule.Reminder1h},
		{name: "both already sent", start: startIn(time.Hour), sent24h: &sent, sent1h: &sent, want: schedule.ReminderNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.ClassifyReminder(tc.start, tc.sent24h, tc.sent1h, now)
			assert.Equal(t, tc.want, got)
		})
	}
}
