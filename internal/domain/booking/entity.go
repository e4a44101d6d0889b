package booking

import (
	"errors"
	"time"

	"classbook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrNotConfirmed          = errors.New("booking is not confirmed")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrClassAlreadyStarted   = errors.New("class has already started")
	ErrOutsideAttendanceSlot = errors.New("outside the attendance confirmation window")
	ErrNotOwner              = errors.New("booking belongs to another user")
)

// Booking is one user's claim on one class session.
//
// Invariants: attendedAt is set iff status is attended; cancelledAt is set iff
// status is cancelled; reminder timestamps are set at most once and never
// cleared.
type Booking struct {
	id                uuid.UUID
	userID            uuid.UUID
	sessionID         uuid.UUID
	status            Status
	createdAt         time.Time
	cancelledAt       *time.Time
	attendedAt        *time.Time
	reminder24hSentAt *time.Time
	reminder1hSentAt  *time.Time
}

func NewBooking(userID, sessionID uuid.UUID, createdAt time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		sessionID: sessionID,
		status:    StatusConfirmed,
		createdAt: createdAt,
	}
}

func ReconstructBooking(
	id, userID, sessionID uuid.UUID,
	status Status,
	createdAt time.Time,
	cancelledAt, attendedAt, reminder24hSentAt, reminder1hSentAt *time.Time,
) *Booking {
	return &Booking{
		id:                id,
		userID:            userID,
		sessionID:         sessionID,
		status:            status,
		createdAt:         createdAt,
		cancelledAt:       cancelledAt,
		attendedAt:        attendedAt,
		reminder24hSentAt: reminder24hSentAt,
		reminder1hSentAt:  reminder1hSentAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) SessionID() uuid.UUID         { return b.sessionID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) AttendedAt() *time.Time       { return b.attendedAt }
func (b *Booking) Reminder24hSentAt() *time.Time { return b.reminder24hSentAt }
func (b *Booking) Reminder1hSentAt() *time.Time  { return b.reminder1hSentAt }

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Cancel transitions confirmed → cancelled. Cancelling an already-cancelled
// booking is rejected, not a no-op. The cutoff is how long before start
// cancellation closes; zero allows cancelling right up to the start.
func (b *Booking) Cancel(start time.Time, cutoff time.Duration, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if !now.Before(start.Add(-cutoff)) {
		return ErrClassAlreadyStarted
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

// ConfirmAttendance transitions confirmed → attended while now is within
// [start, end+grace].
func (b *Booking) ConfirmAttendance(start time.Time, duration, grace time.Duration, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if now.Before(start) || now.After(schedule.End(start, duration).Add(grace)) {
		return ErrOutsideAttendanceSlot
	}
	b.status = StatusAttended
	b.attendedAt = &now
	return nil
}

// ClassifyReminder applies the reminder windows to this booking's send guards.
func (b *Booking) ClassifyReminder(start *time.Time, now time.Time) schedule.ReminderKind {
	return schedule.ClassifyReminder(start, b.reminder24hSentAt, b.reminder1hSentAt, now)
}
