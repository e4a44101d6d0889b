//go:build unit || e2e

package builder

import (
	"time"

	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClassRequestBuilder struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Instructor     string
	DurationMin    int
	CategoryName   string
	VenueName      string
	VenueAddress   string
	VenueRef       *uuid.UUID
	PreferredTimes []time.Time
	RequesterID    uuid.UUID
	RequesterEmail string
	RequesterName  string
	Status         string
	CreatedAt      time.Time
}

func NewClassRequestBuilder() *ClassRequestBuilder {
	return &ClassRequestBuilder{
		ID:             uuid.New(),
		Title:          "Evening Pilates",
		Description:    "Mat pilates for all levels",
		Instructor:     "Dana",
		DurationMin:    45,
		CategoryName:   "Pilates",
		VenueName:      "Studio One",
		VenueAddress:   "1 High Street",
		RequesterID:    uuid.New(),
		RequesterEmail: "member@example.com",
		RequesterName:  "Sam Lee",
		Status:         "pending",
		CreatedAt:      time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ClassRequestBuilder) With(mutate func(*ClassRequestBuilder)) *ClassRequestBuilder {
	mutate(r)
	return r
}

func (r *ClassRequestBuilder) BuildCreateRequestDTO() reqdto.CreateClassRequestRequest {
	var venueRef *string
	if r.VenueRef != nil {
		s := r.VenueRef.String()
		venueRef = &s
	}
	return reqdto.CreateClassRequestRequest{
		Title:        r.Title,
		Description:  r.Description,
		Instructor:   r.Instructor,
		DurationMin:  r.DurationMin,
		CategoryName: r.CategoryName,
		Venue: &reqdto.SuggestedVenueRequest{
			Name:     r.VenueName,
			Address:  r.VenueAddress,
			VenueRef: venueRef,
		},
		PreferredTimes: r.PreferredTimes,
	}
}

func (r *ClassRequestBuilder) BuildView() *queries.ClassRequestView {
	return &queries.ClassRequestView{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Instructor:     r.Instructor,
		DurationMin:    r.DurationMin,
		CategoryName:   r.CategoryName,
		VenueName:      r.VenueName,
		VenueAddress:   r.VenueAddress,
		VenueRef:       r.VenueRef,
		PreferredTimes: r.PreferredTimes,
		RequesterID:    r.RequesterID,
		RequesterEmail: r.RequesterEmail,
		RequesterName:  r.RequesterName,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func (r *ClassRequestBuilder) BuildListItem() *queries.ClassRequestListItem {
	return &queries.ClassRequestListItem{
		ID:            r.ID,
		Title:         r.Title,
		CategoryName:  r.CategoryName,
		RequesterName: r.RequesterName,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}
