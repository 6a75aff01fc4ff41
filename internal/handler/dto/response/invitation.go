package response

import (
	"time"

	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestInvitationResponse struct {
	InvitationID uuid.UUID `json:"invitationId"`
}

type PendingInvitationResponse struct {
	ID              uuid.UUID `json:"id"`
	BookingID       uuid.UUID `json:"bookingId"`
	RequesterID     uuid.UUID `json:"requesterId"`
	RequesterName   string    `json:"requesterName"`
	RequesterTier   string    `json:"requesterTier"`
	RequesterRating float64   `json:"requesterRating"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromPendingInvitationView(v *queries.PendingInvitationView) *PendingInvitationResponse {
	return &PendingInvitationResponse{
		ID:              v.ID,
		BookingID:       v.BookingID,
		RequesterID:     v.RequesterID,
		RequesterName:   v.RequesterName,
		RequesterTier:   v.RequesterTier,
		RequesterRating: v.RequesterRating,
		CreatedAt:       v.CreatedAt,
	}
}
