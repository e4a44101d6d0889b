package readstore

import (
	"context"
	"fmt"
	"time"

	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionReadStore struct {
	db db.DBTX
}

func NewSessionReadStore(dbtx db.DBTX) *SessionReadStore {
	return &SessionReadStore{db: dbtx}
}

// FindUpcoming lists scheduled sessions that have not yet ended at from.
// The bounding box, when present, prunes venues in SQL; the exact radius
// check happens in the query layer.
func (s *SessionReadStore) FindUpcoming(ctx context.Context, from time.Time, filter queries.SessionRowFilter) ([]*queries.SessionListItem, error) {
	query := `
		SELECT s.id, a.name, a.slug, a.instructor, a.tier_level, a.duration_min,
		       s.start_time, v.name, v.latitude, v.longitude,
		       s.max_capacity - (
		           SELECT count(*) FROM bookings b
		           WHERE b.session_id = s.id AND b.status IN ('confirmed', 'attended')
		       ) AS spots_left
		FROM class_sessions s
		JOIN activities a ON a.id = s.activity_id
		JOIN venues v ON v.id = s.venue_id
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE s.status = 'scheduled'
		  AND s.start_time + (a.duration_min * interval '1 minute') > $1`
	args := []any{from}

	if filter.Box != nil {
		query += fmt.Sprintf(
			" AND v.latitude BETWEEN $%d AND $%d AND v.longitude BETWEEN $%d AND $%d",
			len(args)+1, len(args)+2, len(args)+3, len(args)+4)
		args = append(args, filter.Box.MinLat, filter.Box.MaxLat, filter.Box.MinLng, filter.Box.MaxLng)
	}
	if filter.CategorySlug != nil {
		query += fmt.Sprintf(" AND c.slug = $%d", len(args)+1)
		args = append(args, *filter.CategorySlug)
	}
	if filter.TierLevel != nil {
		query += fmt.Sprintf(" AND a.tier_level = $%d", len(args)+1)
		args = append(args, *filter.TierLevel)
	}
	query += " ORDER BY s.start_time ASC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming sessions", err)
	}
	defer rows.Close()

	var result []*queries.SessionListItem
	for rows.Next() {
		item := &queries.SessionListItem{}
		if err := rows.Scan(
			&item.ID, &item.ActivityName, &item.ActivitySlug, &item.Instructor,
			&item.TierLevel, &item.DurationMin, &item.StartTime,
			&item.VenueName, &item.Latitude, &item.Longitude, &item.SpotsLeft,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan session row", err)
		}
		if item.SpotsLeft < 0 {
			item.SpotsLeft = 0
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read session rows", err)
	}

	return result, nil
}

func (s *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	const query = `
		SELECT s.id, a.id, a.name, a.slug, a.instructor, c.name,
		       a.tier_level, a.duration_min, s.start_time,
		       v.id, v.name, v.address, v.latitude, v.longitude,
		       s.max_capacity,
		       (
		           SELECT count(*) FROM bookings b
		           WHERE b.session_id = s.id AND b.status IN ('confirmed', 'attended')
		       ) AS booked_count,
		       s.status
		FROM class_sessions s
		JOIN activities a ON a.id = s.activity_id
		JOIN venues v ON v.id = s.venue_id
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE s.id = $1`

	view := &queries.SessionView{}
	var categoryName pgtype.Text
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ActivityID, &view.ActivityName, &view.ActivitySlug,
		&view.Instructor, &categoryName,
		&view.TierLevel, &view.DurationMin, &view.StartTime,
		&view.VenueID, &view.VenueName, &view.VenueAddress,
		&view.Latitude, &view.Longitude,
		&view.MaxCapacity, &view.BookedCount, &view.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("class session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class session", err)
	}
	view.CategoryName = pgconv.StringPtrFromPgtype(categoryName)

	return view, nil
}

// SnapshotByID loads the few session facts the booking commands check before
// writing: schedule, tier gate and capacity inputs.
func (s *SessionReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*commands.SessionSnapshot, error) {
	const query = `
		SELECT s.id, s.start_time, a.duration_min, a.tier_level, s.max_capacity, s.status
		FROM class_sessions s
		JOIN activities a ON a.id = s.activity_id
		WHERE s.id = $1`

	snap := &commands.SessionSnapshot{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.StartTime, &snap.DurationMin,
		&snap.TierLevel, &snap.MaxCapacity, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("class session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to snapshot class session", err)
	}
	return snap, nil
}
