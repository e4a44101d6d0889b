package repository

import (
	"context"
	"time"

	"classbook/internal/domain/classrequest"
	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClassRequestRepository struct {
	db db.DBTX
}

func NewClassRequestRepository(dbtx db.DBTX) *ClassRequestRepository {
	return &ClassRequestRepository{db: dbtx}
}

func (r *ClassRequestRepository) Create(ctx context.Context, req *classrequest.ClassRequest) error {
	const query = `
		INSERT INTO class_requests (
			id, title, description, instructor, duration_min, category_name,
			venue_name, venue_address, venue_ref, preferred_times,
			requester_user_id, requester_email, requester_name,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	var venueName, venueAddress string
	var venueRef *uuid.UUID
	if v := req.SuggestedVenue(); v != nil {
		venueName = v.Name
		venueAddress = v.Address
		venueRef = v.VenueRef
	}

	_, err := r.db.Exec(ctx, query,
		req.ID(), req.Title(), req.Description(), req.Instructor(), req.Duration(),
		req.CategoryName(), venueName, venueAddress, pgconv.UUIDPtrToPgtype(venueRef),
		req.PreferredTimes(),
		req.Requester().UserID, req.Requester().Email, req.Requester().Name,
		req.Status().String(), req.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create class request", err)
	}
	return nil
}

func (r *ClassRequestRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*classrequest.ClassRequest, error) {
	const query = `
		SELECT id, title, description, instructor, duration_min, category_name,
		       venue_name, venue_address, venue_ref, preferred_times,
		       requester_user_id, requester_email, requester_name,
		       status, admin_note, decided_at, decided_by, created_at
		FROM class_requests
		WHERE id = $1`

	var (
		rid                         uuid.UUID
		title, description          string
		instructor, categoryName    string
		durationMin                 int
		venueName, venueAddress     string
		venueRef, decidedBy         pgtype.UUID
		preferredTimes              []time.Time
		requesterUserID             uuid.UUID
		requesterEmail, requesterName string
		status, adminNote           string
		decidedAt                   pgtype.Timestamptz
		createdAt                   time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&rid, &title, &description, &instructor, &durationMin, &categoryName,
		&venueName, &venueAddress, &venueRef, &preferredTimes,
		&requesterUserID, &requesterEmail, &requesterName,
		&status, &adminNote, &decidedAt, &decidedBy, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("class request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class request", err)
	}

	var suggested *classrequest.SuggestedVenue
	if venueName != "" || venueAddress != "" || venueRef.Valid {
		suggested = &classrequest.SuggestedVenue{
			Name:     venueName,
			Address:  venueAddress,
			VenueRef: pgconv.UUIDPtrFromPgtype(venueRef),
		}
	}

	return classrequest.ReconstructClassRequest(
		rid, title, description, instructor, durationMin, categoryName,
		suggested, preferredTimes,
		classrequest.Requester{UserID: requesterUserID, Email: requesterEmail, Name: requesterName},
		classrequest.Status(status), adminNote,
		pgconv.TimePtrFromPgtype(decidedAt),
		pgconv.UUIDPtrFromPgtype(decidedBy),
		createdAt,
	), nil
}

// ClaimDecision is the guarded pending → decided transition. It returns false
// when the request was already decided (or does not exist), making concurrent
// approvals race-free: only one caller wins the claim.
func (r *ClassRequestRepository) ClaimDecision(ctx context.Context, dbtx db.DBTX, id uuid.UUID, to classrequest.Status, adminID uuid.UUID, note string, decidedAt time.Time) (bool, error) {
	const query = `
		UPDATE class_requests
		SET status = $2, admin_note = $3, decided_at = $4, decided_by = $5
		WHERE id = $1 AND status = 'pending'`

	tag, err := dbtx.Exec(ctx, query, id, to.String(), note, decidedAt, adminID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim class request decision", err)
	}
	return tag.RowsAffected() > 0, nil
}
