package shared

import (
	"time"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/invitation"
	"padelbook/internal/domain/skill"

	"github.com/google/uuid"
)

// BookingSnapshot is the row image a command reads under a row lock before
// deciding how to mutate it.
type BookingSnapshot struct {
	ID              uuid.UUID
	CourtID         uuid.UUID
	StartTime       time.Time
	DurationMinutes int32
	Mode            booking.Mode
	RequiredTier    skill.Tier
	Status          booking.Status
	OpenSeats       int32
	PriceCents      int64
	CreatedAt       time.Time
}

func (s BookingSnapshot) Slot() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(s.StartTime, s.DurationMinutes)
}

type ParticipantSnapshot struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	IsCreator bool
	Paid      bool
	JoinedAt  time.Time
}

type InvitationSnapshot struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	UserID    uuid.UUID
	State     invitation.State
	CreatedAt time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	DNI          string
	Name         string
	Surname      string
	PasswordHash string
	PostalCode   *int32
	Tier         skill.Tier
	BalanceCents int64
	Rating       float64
}

// BookingPatch carries the fields a creator may rewrite on a direct booking
// update. Nil means leave untouched. Values are applied verbatim: edits do
// not re-run availability or pricing checks.
type BookingPatch struct {
	StartTime       *time.Time
	DurationMinutes *int32
	RequiredTier    *skill.Tier
	Mode            *booking.Mode
	OpenSeats       *int32
	Status          *booking.Status
}

func (p BookingPatch) IsEmpty() bool {
	return p.StartTime == nil && p.DurationMinutes == nil && p.RequiredTier == nil &&
		p.Mode == nil && p.OpenSeats == nil && p.Status == nil
}

type ProfilePatch struct {
	Name       *string
	Surname    *string
	PostalCode *int32
	Tier       *skill.Tier
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Surname == nil && p.PostalCode == nil && p.Tier == nil
}

// WalletEntry is an append-only ledger line. AmountCents is signed: negative
// for charges, positive for refunds and top-ups.
type WalletEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BookingID   *uuid.UUID
	AmountCents int64
	Reason      string
	CreatedAt   time.Time
}

const (
	EntryReasonBookingCharge  = "booking_charge"
	EntryReasonBookingRefund  = "booking_refund"
	EntryReasonInvitationJoin = "invitation_join"
	EntryReasonManualAdjust   = "manual_adjust"
)
