package queries

import (
	"context"
	"time"

	"classbook/internal/domain/geo"
	"classbook/internal/domain/schedule"
	"classbook/internal/infra"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.New("class session not found")

// SessionView is the detail read model for a single class session.
type SessionView struct {
	ID           uuid.UUID `json:"id"`
	ActivityID   uuid.UUID `json:"activity_id"`
	ActivityName string    `json:"activity_name"`
	ActivitySlug string    `json:"activity_slug"`
	Instructor   string    `json:"instructor"`
	CategoryName *string   `json:"category_name,omitempty"`
	TierLevel    string    `json:"tier_level"`
	DurationMin  int       `json:"duration_min"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	VenueID      uuid.UUID `json:"venue_id"`
	VenueName    string    `json:"venue_name"`
	VenueAddress string    `json:"venue_address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	MaxCapacity  int       `json:"max_capacity"`
	BookedCount  int       `json:"booked_count"`
	SpotsLeft    int       `json:"spots_left"`
	Status       string    `json:"status"`
	IsLive       bool      `json:"is_live"`
}

// SessionListItem is one row of the discovery listing. DistanceKm is set only
// when the listing was filtered by proximity.
type SessionListItem struct {
	ID           uuid.UUID `json:"id"`
	ActivityName string    `json:"activity_name"`
	ActivitySlug string    `json:"activity_slug"`
	Instructor   string    `json:"instructor"`
	TierLevel    string    `json:"tier_level"`
	DurationMin  int       `json:"duration_min"`
	StartTime    time.Time `json:"start_time"`
	VenueName    string    `json:"venue_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SpotsLeft    int       `json:"spots_left"`
	IsLive       bool      `json:"is_live"`
	DistanceKm   *float64  `json:"distance_km,omitempty"`
}

// SessionFilter narrows the discovery listing. Near/RadiusKm go together.
type SessionFilter struct {
	Near         *geo.Point
	RadiusKm     float64
	CategorySlug *string
	TierLevel    *string
}

type SessionQueries interface {
	List(ctx context.Context, filter SessionFilter) ([]*SessionListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

// SessionRowFilter is the storage-level filter: the bounding box prunes rows
// cheaply in SQL before the exact distance check runs in memory.
type SessionRowFilter struct {
	Box          *geo.BoundingBox
	CategorySlug *string
	TierLevel    *string
}

type SessionReadStore interface {
	FindUpcoming(ctx context.Context, from time.Time, filter SessionRowFilter) ([]*SessionListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

type sessionQueriesImpl struct {
	readStore SessionReadStore
	clock     clock.Clock
}

func NewSessionQueries(readStore SessionReadStore, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{readStore: readStore, clock: clk}
}

func (q *sessionQueriesImpl) List(ctx context.Context, filter SessionFilter) ([]*SessionListItem, error) {
	now := q.clock.Now()

	rowFilter := SessionRowFilter{
		CategorySlug: filter.CategorySlug,
		TierLevel:    filter.TierLevel,
	}
	if filter.Near != nil {
		box := geo.NewBoundingBox(*filter.Near, filter.RadiusKm)
		rowFilter.Box = &box
	}

	rows, err := q.readStore.FindUpcoming(ctx, now, rowFilter)
	if err != nil {
		return nil, err
	}

	result := make([]*SessionListItem, 0, len(rows))
	for _, row := range rows {
		if filter.Near != nil {
			venue := geo.Point{Lat: row.Latitude, Lng: row.Longitude}
			dist := geo.DistanceKm(*filter.Near, venue)
			if dist > filter.RadiusKm {
				continue
			}
			row.DistanceKm = &dist
		}
		row.IsLive = schedule.IsLive(row.StartTime, time.Duration(row.DurationMin)*time.Minute, now)
		result = append(result, row)
	}

	return result, nil
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	view.EndTime = schedule.End(view.StartTime, time.Duration(view.DurationMin)*time.Minute)
	view.IsLive = schedule.IsLive(view.StartTime, time.Duration(view.DurationMin)*time.Minute, now)
	view.SpotsLeft = view.MaxCapacity - view.BookedCount
	if view.SpotsLeft < 0 {
		view.SpotsLeft = 0
	}
	return view, nil
}
