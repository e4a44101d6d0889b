package request

import (
	"time"

	"github.com/google/uuid"
)

type SuggestedVenueRequest struct {
	Name     string  `json:"name" binding:"omitempty,max=200"`
	Address  string  `json:"address" binding:"omitempty,max=500"`
	VenueRef *string `json:"venue_ref" binding:"omitempty,uuid"`
}

type CreateClassRequestRequest struct {
	Title          string                 `json:"title" binding:"required,min=3,max=200"`
	Description    string                 `json:"description" binding:"omitempty,max=2000"`
	Instructor     string                 `json:"instructor" binding:"omitempty,max=200"`
	DurationMin    int                    `json:"duration_min" binding:"omitempty,min=0,max=480"`
	CategoryName   string                 `json:"category_name" binding:"omitempty,max=100"`
	Venue          *SuggestedVenueRequest `json:"venue" binding:"omitempty"`
	PreferredTimes []time.Time            `json:"preferred_times" binding:"omitempty,max=10"`
}

func (r *CreateClassRequestRequest) VenueRefUUID() (*uuid.UUID, error) {
	if r.Venue == nil || r.Venue.VenueRef == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*r.Venue.VenueRef)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// DecideClassRequestRequest uses the camelCase keys the admin frontend sends.
type DecideClassRequestRequest struct {
	AdminNote      string `json:"adminNote" binding:"omitempty,max=1000"`
	CreateSessions *bool  `json:"createSessions"`
}

// CreateSessionsOrDefault treats an absent flag as true.
func (r *DecideClassRequestRequest) CreateSessionsOrDefault() bool {
	if r.CreateSessions == nil {
		return true
	}
	return *r.CreateSessions
}
