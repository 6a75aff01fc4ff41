package request

import (
	"time"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/skill"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CourtID         uuid.UUID `json:"court_id" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int32     `json:"duration_minutes" binding:"required"`
	Mode            string    `json:"mode" binding:"required"`
	RequiredTier    string    `json:"required_tier" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		CourtID:         r.CourtID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Mode:            r.Mode,
		RequiredTier:    r.RequiredTier,
	}
}

type ModifyBookingRequest struct {
	StartTime       *time.Time `json:"start_time,omitempty"`
	DurationMinutes *int32     `json:"duration_minutes,omitempty"`
	RequiredTier    *string    `json:"required_tier,omitempty"`
	Mode            *string    `json:"mode,omitempty"`
	OpenSeats       *int32     `json:"open_seats,omitempty"`
	Status          *string    `json:"status,omitempty"`
}

func (r ModifyBookingRequest) ToPatch() shared.BookingPatch {
	patch := shared.BookingPatch{
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		OpenSeats:       r.OpenSeats,
	}
	if r.RequiredTier != nil {
		t := skill.Tier(*r.RequiredTier)
		patch.RequiredTier = &t
	}
	if r.Mode != nil {
		m := booking.Mode(*r.Mode)
		patch.Mode = &m
	}
	if r.Status != nil {
		s := booking.Status(*r.Status)
		patch.Status = &s
	}
	return patch
}
