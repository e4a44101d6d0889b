package repository

import (
	"context"
	"errors"
	"time"

	"classbook/internal/domain/booking"
	"classbook/internal/domain/schedule"
	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// CreateIfCapacity inserts the booking only while the session's confirmed and
// attended bookings stay below max_capacity. The capacity check and the
// insert are a single statement, so the last seat cannot be double-sold.
// A full session surfaces as CONFLICT; a second active booking for the same
// user/session pair trips the partial unique index and surfaces as
// DUPLICATE_KEY.
func (r *BookingRepository) CreateIfCapacity(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, user_id, session_id, status, created_at)
		SELECT $1, $2, $3, $4, $5
		WHERE (
			SELECT count(*) FROM bookings
			WHERE session_id = $3 AND status IN ('confirmed', 'attended')
		) < (
			SELECT max_capacity FROM class_sessions WHERE id = $3
		)`

	tag, err := dbtx.Exec(ctx, query,
		b.ID(), b.UserID(), b.SessionID(), b.Status().String(), b.CreatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("active booking already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("class session is at capacity", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, user_id, session_id, status, created_at,
		       cancelled_at, attended_at, reminder_24h_sent_at, reminder_1h_sent_at
		FROM bookings
		WHERE id = $1`

	var (
		bid, userID, sessionID                      uuid.UUID
		status                                      string
		createdAt                                   time.Time
		cancelledAt, attendedAt, sent24h, sent1h    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bid, &userID, &sessionID, &status, &createdAt,
		&cancelledAt, &attendedAt, &sent24h, &sent1h)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return booking.ReconstructBooking(
		bid, userID, sessionID,
		booking.Status(status), createdAt,
		pgconv.TimePtrFromPgtype(cancelledAt),
		pgconv.TimePtrFromPgtype(attendedAt),
		pgconv.TimePtrFromPgtype(sent24h),
		pgconv.TimePtrFromPgtype(sent1h),
	), nil
}

// HasActiveBooking reports whether a non-cancelled booking exists for the pair.
func (r *BookingRepository) HasActiveBooking(ctx context.Context, userID, sessionID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND session_id = $2 AND status <> 'cancelled'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, sessionID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return exists, nil
}

// CountCreatedBetween counts bookings that consume monthly usage: anything the
// user created in the window that was not cancelled.
func (r *BookingRepository) CountCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	const query = `
		SELECT count(*) FROM bookings
		WHERE user_id = $1 AND status <> 'cancelled' AND created_at >= $2 AND created_at < $3`

	var count int
	if err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return count, nil
}

// UpdateStatus persists a lifecycle transition already validated by the
// entity. Every legal transition leaves the confirmed state, so the write is
// conditional on it: a row that moved concurrently is not overwritten and the
// caller sees CONFLICT instead.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, attended_at = $4
		WHERE id = $1 AND status = 'confirmed'`

	tag, err := dbtx.Exec(ctx, query,
		b.ID(), b.Status().String(),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.TimePtrToPgtype(b.AttendedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking is no longer confirmed", nil, infra.KindConflict)
	}
	return nil
}

// MarkReminderSent stamps the send guard for one reminder kind. The guard
// column is only ever written once; a second stamp is refused so a timestamp
// can never be reset.
func (r *BookingRepository) MarkReminderSent(ctx context.Context, bookingID uuid.UUID, kind schedule.ReminderKind, sentAt time.Time) error {
	var query string
	switch kind {
	case schedule.Reminder24h:
		query = `UPDATE bookings SET reminder_24h_sent_at = $2 WHERE id = $1 AND reminder_24h_sent_at IS NULL`
	case schedule.Reminder1h:
		query = `UPDATE bookings SET reminder_1h_sent_at = $2 WHERE id = $1 AND reminder_1h_sent_at IS NULL`
	default:
		return infra.WrapRepoErr("unknown reminder kind", nil, infra.KindConflict)
	}

	tag, err := r.db.Exec(ctx, query, bookingID, sentAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder already marked sent", nil, infra.KindConflict)
	}
	return nil
}
