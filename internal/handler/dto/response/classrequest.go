package response

import (
	"classbook/internal/usecase/commands"

	"github.com/google/uuid"
)

// ApprovalResponse reports what an approval materialized.
type ApprovalResponse struct {
	RequestID  uuid.UUID   `json:"request_id"`
	Status     string      `json:"status"`
	CategoryID *uuid.UUID  `json:"category_id,omitempty"`
	ActivityID uuid.UUID   `json:"activity_id"`
	SessionIDs []uuid.UUID `json:"session_ids,omitempty"`
}

func FromApproveResult(r *commands.ApproveResult) *ApprovalResponse {
	return &ApprovalResponse{
		RequestID:  r.RequestID,
		Status:     "approved",
		CategoryID: r.CategoryID,
		ActivityID: r.ActivityID,
		SessionIDs: r.SessionIDs,
	}
}
