package response

import (
	"time"

	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	ChargedCents int64     `json:"chargedCents"`
}

type ModifyBookingResponse struct {
	UpdatedRows int64 `json:"updatedRows"`
}

type CancelBookingResponse struct {
	RefundCents    int64 `json:"refundCents"`
	BookingDeleted bool  `json:"bookingDeleted"`
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"courtId"`
	CompanyName     string    `json:"companyName"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int32     `json:"durationMinutes"`
	RequiredTier    string    `json:"requiredTier"`
	Mode            string    `json:"mode"`
	Status          string    `json:"status"`
	OpenSeats       int32     `json:"openSeats"`
	SeatPriceCents  int64     `json:"seatPriceCents"`
	IsCreator       bool      `json:"isCreator"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OpenBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"courtId"`
	CompanyName     string    `json:"companyName"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int32     `json:"durationMinutes"`
	RequiredTier    string    `json:"requiredTier"`
	OpenSeats       int32     `json:"openSeats"`
	SeatPriceCents  int64     `json:"seatPriceCents"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		CourtID:         v.CourtID,
		CompanyName:     v.CompanyName,
		StartTime:       v.StartTime,
		DurationMinutes: v.DurationMinutes,
		RequiredTier:    v.RequiredTier,
		Mode:            v.Mode,
		Status:          v.Status,
		OpenSeats:       v.OpenSeats,
		SeatPriceCents:  v.SeatPriceCents,
		IsCreator:       v.IsCreator,
		CreatedAt:       v.CreatedAt,
	}
}

func FromOpenBookingView(v *queries.OpenBookingView) *OpenBookingResponse {
	return &OpenBookingResponse{
		ID:              v.ID,
		CourtID:         v.CourtID,
		CompanyName:     v.CompanyName,
		StartTime:       v.StartTime,
		DurationMinutes: v.DurationMinutes,
		RequiredTier:    v.RequiredTier,
		OpenSeats:       v.OpenSeats,
		SeatPriceCents:  v.SeatPriceCents,
	}
}
