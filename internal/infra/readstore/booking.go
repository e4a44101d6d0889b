package readstore

import (
	"context"
	"time"

	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.user_id, b.session_id, a.name, v.name,
		       cs.start_time, a.duration_min,
		       b.status, b.created_at, b.cancelled_at, b.attended_at
		FROM bookings b
		JOIN class_sessions cs ON cs.id = b.session_id
		JOIN activities a ON a.id = cs.activity_id
		JOIN venues v ON v.id = cs.venue_id
		WHERE b.id = $1`

	view := &queries.BookingView{}
	var cancelledAt, attendedAt pgtype.Timestamptz
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.SessionID, &view.ActivityName, &view.VenueName,
		&view.StartTime, &view.DurationMin,
		&view.Status, &view.CreatedAt, &cancelledAt, &attendedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	view.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	view.AttendedAt = pgconv.TimePtrFromPgtype(attendedAt)

	return view, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.session_id, a.name, v.name, cs.start_time, b.status, b.created_at
		FROM bookings b
		JOIN class_sessions cs ON cs.id = b.session_id
		JOIN activities a ON a.id = cs.activity_id
		JOIN venues v ON v.id = cs.venue_id
		WHERE b.user_id = $1
		ORDER BY cs.start_time DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		item := &queries.BookingListItem{}
		if err := rows.Scan(
			&item.ID, &item.SessionID, &item.ActivityName, &item.VenueName,
			&item.StartTime, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

// UpcomingCandidates returns confirmed bookings whose session starts inside
// [from, to], together with everything the reminder email needs. Bookings with
// both reminder stamps already set are excluded up front.
func (s *BookingReadStore) UpcomingCandidates(ctx context.Context, from, to time.Time) ([]*commands.ReminderCandidate, error) {
	const query = `
		SELECT b.id, u.email, u.first_name, a.name, v.name, v.address,
		       cs.start_time, b.reminder_24h_sent_at, b.reminder_1h_sent_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN class_sessions cs ON cs.id = b.session_id
		JOIN activities a ON a.id = cs.activity_id
		JOIN venues v ON v.id = cs.venue_id
		WHERE b.status = 'confirmed'
		  AND cs.start_time >= $1 AND cs.start_time <= $2
		  AND (b.reminder_24h_sent_at IS NULL OR b.reminder_1h_sent_at IS NULL)
		ORDER BY cs.start_time ASC`

	rows, err := s.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminder candidates", err)
	}
	defer rows.Close()

	var result []*commands.ReminderCandidate
	for rows.Next() {
		c := &commands.ReminderCandidate{}
		var email pgtype.Text
		var sent24h, sent1h pgtype.Timestamptz
		if err := rows.Scan(
			&c.BookingID, &email, &c.FirstName, &c.ActivityName,
			&c.VenueName, &c.VenueAddress, &c.StartTime, &sent24h, &sent1h,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder candidate", err)
		}
		c.Email = pgconv.StringPtrFromPgtype(email)
		c.Sent24hAt = pgconv.TimePtrFromPgtype(sent24h)
		c.Sent1hAt = pgconv.TimePtrFromPgtype(sent1h)
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reminder candidates", err)
	}

	return result, nil
}
