//go:build unit || e2e

package builder

import (
	"time"

	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID           uuid.UUID
	ActivityID   uuid.UUID
	ActivityName string
	ActivitySlug string
	Instructor   string
	CategoryName string
	TierLevel    string
	DurationMin  int
	StartTime    time.Time
	VenueID      uuid.UUID
	VenueName    string
	VenueAddress string
	Latitude     float64
	Longitude    float64
	MaxCapacity  int
	BookedCount  int
	Status       string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:           uuid.New(),
		ActivityID:   uuid.New(),
		ActivityName: "Sunrise Yoga",
		ActivitySlug: "sunrise-yoga",
		Instructor:   "Dana",
		CategoryName: "Yoga",
		TierLevel:    "basic",
		DurationMin:  60,
		StartTime:    time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC),
		VenueID:      uuid.New(),
		VenueName:    "Studio One",
		VenueAddress: "1 High Street",
		Latitude:     51.5074,
		Longitude:    -0.1278,
		MaxCapacity:  20,
		Status:       "scheduled",
	}
}

func (s *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(s)
	return s
}

func (s *SessionBuilder) BuildSnapshot() *commands.SessionSnapshot {
	return &commands.SessionSnapshot{
		ID:          s.ID,
		StartTime:   s.StartTime,
		DurationMin: s.DurationMin,
		TierLevel:   s.TierLevel,
		MaxCapacity: s.MaxCapacity,
		Status:      s.Status,
	}
}

func (s *SessionBuilder) BuildListItem() *queries.SessionListItem {
	return &queries.SessionListItem{
		ID:           s.ID,
		ActivityName: s.ActivityName,
		ActivitySlug: s.ActivitySlug,
		Instructor:   s.Instructor,
		TierLevel:    s.TierLevel,
		DurationMin:  s.DurationMin,
		StartTime:    s.StartTime,
		VenueName:    s.VenueName,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		SpotsLeft:    s.MaxCapacity - s.BookedCount,
	}
}

func (s *SessionBuilder) BuildView() *queries.SessionView {
	category := s.CategoryName
	return &queries.SessionView{
		ID:           s.ID,
		ActivityID:   s.ActivityID,
		ActivityName: s.ActivityName,
		ActivitySlug: s.ActivitySlug,
		Instructor:   s.Instructor,
		CategoryName: &category,
		TierLevel:    s.TierLevel,
		DurationMin:  s.DurationMin,
		StartTime:    s.StartTime,
		EndTime:      s.StartTime.Add(time.Duration(s.DurationMin) * time.Minute),
		VenueID:      s.VenueID,
		VenueName:    s.VenueName,
		VenueAddress: s.VenueAddress,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		MaxCapacity:  s.MaxCapacity,
		BookedCount:  s.BookedCount,
		SpotsLeft:    s.MaxCapacity - s.BookedCount,
		Status:       s.Status,
	}
}
