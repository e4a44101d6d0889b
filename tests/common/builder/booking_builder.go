//go:build unit || e2e

package builder

import (
	"time"

	dombooking "classbook/internal/domain/booking"
	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	SessionID    uuid.UUID
	Email        string
	FirstName    string
	ActivityName string
	VenueName    string
	VenueAddress string
	StartTime    time.Time
	DurationMin  int
	Status       dombooking.Status
	CreatedAt    time.Time
	Sent24hAt    *time.Time
	Sent1hAt     *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		SessionID:    uuid.New(),
		Email:        "member@example.com",
		FirstName:    "Sam",
		ActivityName: "Sunrise Yoga",
		VenueName:    "Studio One",
		VenueAddress: "1 High Street",
		StartTime:    time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC),
		DurationMin:  60,
		Status:       dombooking.StatusConfirmed,
		CreatedAt:    time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.UserID, b.SessionID,
		b.Status, b.CreatedAt,
		nil, nil, b.Sent24hAt, b.Sent1hAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{SessionID: b.SessionID.String()}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		UserID:       b.UserID,
		SessionID:    b.SessionID,
		ActivityName: b.ActivityName,
		VenueName:    b.VenueName,
		StartTime:    b.StartTime,
		DurationMin:  b.DurationMin,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		SessionID:    b.SessionID,
		ActivityName: b.ActivityName,
		VenueName:    b.VenueName,
		StartTime:    b.StartTime,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildReminderCandidate() *commands.ReminderCandidate {
	email := b.Email
	return &commands.ReminderCandidate{
		BookingID:    b.ID,
		Email:        &email,
		FirstName:    b.FirstName,
		ActivityName: b.ActivityName,
		VenueName:    b.VenueName,
		VenueAddress: b.VenueAddress,
		StartTime:    b.StartTime,
		Sent24hAt:    b.Sent24hAt,
		Sent1hAt:     b.Sent1hAt,
	}
}
