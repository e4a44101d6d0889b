//go:build unit

package booking_test

import (
	"testing"
	"time"

	"classbook/internal/domain/booking"
	"classbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	start = now.Add(24 * time.Hour)
)

func newConfirmed(t *testing.T) *booking.Booking {
	t.Helper()
	b := booking.NewBooking(uuid.New(), uuid.New(), now)
	require.Equal(t, booking.StatusConfirmed, b.Status())
	return b
}

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()

	b := booking.NewBooking(userID, sessionID, now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, userID, b.UserID())
	assert.Equal(t, sessionID, b.SessionID())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, now, b.CreatedAt())
	assert.True(t, b.IsActive())
	assert.True(t, b.IsOwnedBy(userID))
	assert.False(t, b.IsOwnedBy(uuid.New()))
	assert.Nil(t, b.CancelledAt())
	assert.Nil(t, b.AttendedAt())
}

func TestCancel(t *testing.T) {
	t.Run("cancels before start", func(t *testing.T) {
		b := newConfirmed(t)

		err := b.Cancel(start, 0, now)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
		assert.False(t, b.IsActive())
	})

	t.Run("zero cutoff allows cancelling right up to start", func(t *testing.T) {
		b := newConfirmed(t)
		assert.NoError(t, b.Cancel(start, 0, start.Add(-time.Second)))
	})

	t.Run("rejects at the exact start", func(t *testing.T) {
		b := newConfirmed(t)
		assert.ErrorIs(t, b.Cancel(start, 0, start), booking.ErrClassAlreadyStarted)
	})

	t.Run("cutoff moves the deadline earlier", func(t *testing.T) {
		cutoff := 2 * time.Hour

		b := newConfirmed(t)
		assert.NoError(t, b.Cancel(start, cutoff, start.Add(-cutoff-time.Second)))

		b = newConfirmed(t)
		assert.ErrorIs(t, b.Cancel(start, cutoff, start.Add(-cutoff)), booking.ErrClassAlreadyStarted)
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		b := newConfirmed(t)
		require.NoError(t, b.Cancel(start, 0, now))
		assert.ErrorIs(t, b.Cancel(start, 0, now), booking.ErrAlreadyCancelled)
	})

	t.Run("attended bookings cannot be cancelled", func(t *testing.T) {
		b := newConfirmed(t)
		require.NoError(t, b.ConfirmAttendance(start, time.Hour, 0, start))
		assert.ErrorIs(t, b.Cancel(start, 0, now), booking.ErrNotConfirmed)
	})
}

func TestConfirmAttendance(t *testing.T) {
	duration := time.Hour
	grace := 15 * time.Minute
	end := start.Add(duration)

	t.Run("confirms during the class", func(t *testing.T) {
		b := newConfirmed(t)
		at := start.Add(30 * time.Minute)

		err := b.ConfirmAttendance(start, duration, grace, at)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusAttended, b.Status())
		require.NotNil(t, b.AttendedAt())
		assert.Equal(t, at, *b.AttendedAt())
	})

	t.Run("window edges", func(t *testing.T) {
		cases := []struct {
			name  string
			at    time.Time
			errIs error
		}{
			{name: "one second before start", at: start.Add(-time.Second), errIs: booking.ErrOutsideAttendanceSlot},
			{name: "exactly at start", at: start},
			{name: "exactly at end", at: end},
			{name: "end of grace window", at: end.Add(grace)},
			{name: "past the grace window", at: end.Add(grace + time.Second), errIs: booking.ErrOutsideAttendanceSlot},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := newConfirmed(t)
				err := b.ConfirmAttendance(start, duration, grace, tc.at)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					assert.Equal(t, booking.StatusConfirmed, b.Status())
				} else {
					assert.NoError(t, err)
					assert.Equal(t, booking.StatusAttended, b.Status())
				}
			})
		}
	})

	t.Run("cancelled bookings cannot attend", func(t *testing.T) {
		b := newConfirmed(t)
		require.NoError(t, b.Cancel(start, 0, now))
		assert.ErrorIs(t, b.ConfirmAttendance(start, duration, grace, start), booking.ErrNotConfirmed)
	})

	t.Run("attending twice is rejected", func(t *testing.T) {
		b := newConfirmed(t)
		require.NoError(t, b.ConfirmAttendance(start, duration, grace, start))
		assert.ErrorIs(t, b.ConfirmAttendance(start, duration, grace, start), booking.ErrNotConfirmed)
	})
}

func TestClassifyReminder(t *testing.T) {
	sent := now.Add(-time.Hour)
	b := booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		booking.StatusConfirmed, now.Add(-48*time.Hour),
		nil, nil, &sent, nil,
	)

	// The 24h stamp is already set, so only the 1h window can fire.
	in24h := now.Add(24 * time.Hour)
	assert.Equal(t, schedule.ReminderNone, b.ClassifyReminder(&in24h, now))

	in1h := now.Add(time.Hour)
	assert.Equal(t, schedule.Reminder1h, b.ClassifyReminder(&in1h, now))
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.True(t, booking.StatusNoShow.IsValid())
	assert.False(t, booking.Status("pending").IsValid())

	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusAttended.IsTerminal())
	assert.True(t, booking.StatusNoShow.IsTerminal())
}
