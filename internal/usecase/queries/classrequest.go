package queries

import (
	"context"
	"time"

	"classbook/internal/infra"
	"classbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClassRequestNotFound = errs.New("class request not found")

type ClassRequestView struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Instructor     string      `json:"instructor"`
	DurationMin    int         `json:"duration_min"`
	CategoryName   string      `json:"category_name"`
	VenueName      string      `json:"venue_name,omitempty"`
	VenueAddress   string      `json:"venue_address,omitempty"`
	VenueRef       *uuid.UUID  `json:"venue_ref,omitempty"`
	PreferredTimes []time.Time `json:"preferred_times"`
	RequesterID    uuid.UUID   `json:"requester_id"`
	RequesterEmail string      `json:"requester_email"`
	RequesterName  string      `json:"requester_name"`
	Status         string      `json:"status"`
	AdminNote      string      `json:"admin_note,omitempty"`
	DecidedAt      *time.Time  `json:"decided_at,omitempty"`
	DecidedBy      *uuid.UUID  `json:"decided_by,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ClassRequestListItem struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	CategoryName  string    `json:"category_name"`
	RequesterName string    `json:"requester_name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ClassRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClassRequestView, error)
	List(ctx context.Context, status *string) ([]*ClassRequestListItem, error)
	ListByRequester(ctx context.Context, userID uuid.UUID) ([]*ClassRequestListItem, error)
}

type ClassRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClassRequestView, error)
	FindAll(ctx context.Context, status *string) ([]*ClassRequestListItem, error)
	FindByRequesterID(ctx context.Context, userID uuid.UUID) ([]*ClassRequestListItem, error)
}

type classRequestQueriesImpl struct {
	readStore ClassRequestReadStore
}

func NewClassRequestQueries(readStore ClassRequestReadStore) ClassRequestQueries {
	return &classRequestQueriesImpl{readStore: readStore}
}

func (q *classRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClassRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *classRequestQueriesImpl) List(ctx context.Context, status *string) ([]*ClassRequestListItem, error) {
	return q.readStore.FindAll(ctx, status)
}

func (q *classRequestQueriesImpl) ListByRequester(ctx context.Context, userID uuid.UUID) ([]*ClassRequestListItem, error) {
	return q.readStore.FindByRequesterID(ctx, userID)
}
