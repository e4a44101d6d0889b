package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
}

func (r *CreateBookingRequest) SessionUUID() (uuid.UUID, error) {
	return uuid.Parse(r.SessionID)
}
