package readstore

import (
	"context"
	"time"

	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClassRequestReadStore struct {
	db db.DBTX
}

func NewClassRequestReadStore(dbtx db.DBTX) *ClassRequestReadStore {
	return &ClassRequestReadStore{db: dbtx}
}

func (s *ClassRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClassRequestView, error) {
	const query = `
		SELECT id, title, description, instructor, duration_min, category_name,
		       venue_name, venue_address, venue_ref, preferred_times,
		       requester_user_id, requester_email, requester_name,
		       status, admin_note, decided_at, decided_by, created_at
		FROM class_requests
		WHERE id = $1`

	view := &queries.ClassRequestView{}
	var venueRef, decidedBy pgtype.UUID
	var decidedAt pgtype.Timestamptz
	var preferredTimes []time.Time
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Title, &view.Description, &view.Instructor,
		&view.DurationMin, &view.CategoryName,
		&view.VenueName, &view.VenueAddress, &venueRef, &preferredTimes,
		&view.RequesterID, &view.RequesterEmail, &view.RequesterName,
		&view.Status, &view.AdminNote, &decidedAt, &decidedBy, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("class request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class request", err)
	}
	view.VenueRef = pgconv.UUIDPtrFromPgtype(venueRef)
	view.PreferredTimes = preferredTimes
	view.DecidedAt = pgconv.TimePtrFromPgtype(decidedAt)
	view.DecidedBy = pgconv.UUIDPtrFromPgtype(decidedBy)

	return view, nil
}

func (s *ClassRequestReadStore) FindAll(ctx context.Context, status *string) ([]*queries.ClassRequestListItem, error) {
	query := `
		SELECT id, title, category_name, requester_name, status, created_at
		FROM class_requests`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at ASC`

	return s.list(ctx, query, args...)
}

func (s *ClassRequestReadStore) FindByRequesterID(ctx context.Context, userID uuid.UUID) ([]*queries.ClassRequestListItem, error) {
	const query = `
		SELECT id, title, category_name, requester_name, status, created_at
		FROM class_requests
		WHERE requester_user_id = $1
		ORDER BY created_at DESC`

	return s.list(ctx, query, userID)
}

func (s *ClassRequestReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ClassRequestListItem, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list class requests", err)
	}
	defer rows.Close()

	var result []*queries.ClassRequestListItem
	for rows.Next() {
		item := &queries.ClassRequestListItem{}
		if err := rows.Scan(
			&item.ID, &item.Title, &item.CategoryName,
			&item.RequesterName, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan class request row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read class request rows", err)
	}

	return result, nil
}
