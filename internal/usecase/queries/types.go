package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"court_id"`
	CompanyName     string    `json:"company_name"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int32     `json:"duration_minutes"`
	RequiredTier    string    `json:"required_tier"`
	Mode            string    `json:"mode"`
	Status          string    `json:"status"`
	OpenSeats       int32     `json:"open_seats"`
	SeatPriceCents  int64     `json:"seat_price_cents"`
	IsCreator       bool      `json:"is_creator"`
	CreatedAt       time.Time `json:"created_at"`
}

type OpenBookingView struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"court_id"`
	CompanyName     string    `json:"company_name"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int32     `json:"duration_minutes"`
	RequiredTier    string    `json:"required_tier"`
	OpenSeats       int32     `json:"open_seats"`
	SeatPriceCents  int64     `json:"seat_price_cents"`
}

type PendingInvitationView struct {
	ID              uuid.UUID `json:"id"`
	BookingID       uuid.UUID `json:"booking_id"`
	RequesterID     uuid.UUID `json:"requester_id"`
	RequesterName   string    `json:"requester_name"`
	RequesterTier   string    `json:"requester_tier"`
	RequesterRating float64   `json:"requester_rating"`
	CreatedAt       time.Time `json:"created_at"`
}

type CompanyView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	OpeningHour string    `json:"opening_hour"`
	ClosingHour string    `json:"closing_hour"`
}

type BusySlotView struct {
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int32     `json:"duration_minutes"`
	Status          string    `json:"status"`
}

type CourtView struct {
	ID        uuid.UUID      `json:"id"`
	Surface   string         `json:"surface"`
	Indoor    bool           `json:"indoor"`
	BusySlots []BusySlotView `json:"busy_slots,omitempty"`
}

type CompanyDetailView struct {
	CompanyView
	Courts []CourtView `json:"courts"`
}

type UserSettingsView struct {
	ID           uuid.UUID `json:"id"`
	DNI          string    `json:"dni"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	PostalCode   *int32    `json:"postal_code,omitempty"`
	Tier         string    `json:"tier"`
	BalanceCents int64     `json:"balance_cents"`
	Rating       float64   `json:"rating"`
}

type WalletEntryView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	Reason      string     `json:"reason"`
	CreatedAt   time.Time  `json:"created_at"`
}
