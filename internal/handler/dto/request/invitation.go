package request

import (
	"github.com/google/uuid"
)

type RequestInvitationRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}
