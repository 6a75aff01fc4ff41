package booking

import (
	"errors"
	"time"

	"padelbook/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrInvalidMode   = errors.New("invalid booking mode")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrNoOpenSeats   = errors.New("no open seats")
	ErrSeatsExceeded = errors.New("open seats above mode maximum")
)

type Booking struct {
	id           uuid.UUID
	courtID      uuid.UUID
	slot         TimeSlot
	requiredTier skill.Tier
	mode         Mode
	openSeats    int32
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking builds a pending booking with the seat counter its mode
// dictates. Pricing and availability are checked by the caller; this
// constructor only guards local invariants.
func NewBooking(courtID uuid.UUID, slot TimeSlot, requiredTier skill.Tier, mode Mode) (*Booking, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}
	if !requiredTier.IsValid() {
		return nil, skill.ErrInvalidTier
	}
	return &Booking{
		id:           uuid.New(),
		courtID:      courtID,
		slot:         slot,
		requiredTier: requiredTier,
		mode:         mode,
		openSeats:    mode.InitialOpenSeats(),
		status:       StatusPending,
	}, nil
}

func ReconstructBooking(
	id, courtID uuid.UUID,
	slot TimeSlot,
	requiredTier skill.Tier,
	mode Mode,
	openSeats int32,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		courtID:      courtID,
		slot:         slot,
		requiredTier: requiredTier,
		mode:         mode,
		openSeats:    openSeats,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) CourtID() uuid.UUID      { return b.courtID }
func (b *Booking) Slot() TimeSlot          { return b.slot }
func (b *Booking) RequiredTier() skill.Tier { return b.requiredTier }
func (b *Booking) Mode() Mode              { return b.mode }
func (b *Booking) OpenSeats() int32        { return b.openSeats }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status.Blocking()
}

// ClaimSeat consumes one open seat, used when an invitation is accepted.
func (b *Booking) ClaimSeat() error {
	if b.openSeats <= 0 {
		return ErrNoOpenSeats
	}
	b.openSeats--
	return nil
}

// ReleaseSeat frees one seat after a shared participant leaves. Exclusive
// bookings have no seats to release.
func (b *Booking) ReleaseSeat() error {
	if b.mode != ModeShared {
		return nil
	}
	if b.openSeats >= b.mode.MaxOpenSeats() {
		return ErrSeatsExceeded
	}
	b.openSeats++
	return nil
}

type Participant struct {
	UserID    uuid.UUID
	BookingID uuid.UUID
	IsCreator bool
	Paid      bool
}

func NewCreatorParticipant(userID, bookingID uuid.UUID) Participant {
	return Participant{UserID: userID, BookingID: bookingID, IsCreator: true, Paid: true}
}

func NewJoinerParticipant(userID, bookingID uuid.UUID) Participant {
	return Participant{UserID: userID, BookingID: bookingID, IsCreator: false, Paid: true}
}
