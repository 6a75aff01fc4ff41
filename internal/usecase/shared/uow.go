package shared

import (
	"context"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/invitation"
	"padelbook/internal/domain/user"
	"padelbook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one atomically committed transaction.
// Every engine operation (booking lifecycle, invitation workflow, wallet
// adjustment) is exactly one Within call: either all of its reads-then-writes
// commit, or none do.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx bundles the write-side repositories bound to the open transaction.
type Tx interface {
	Bookings() BookingRepository
	Participants() ParticipantRepository
	Invitations() InvitationRepository
	Users() UserRepository
	WalletEntries() WalletEntryRepository
	Ratings() RatingRepository
	DB() db.DBTX
}

type BookingRepository interface {
	// HasOverlap locks the court's active bookings in the requested window
	// (FOR UPDATE) and reports whether any overlap exists. Must run in the
	// same transaction as the insert that follows it.
	HasOverlap(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error)
	// Create inserts the booking with the per-seat price it was charged at.
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking, seatPriceCents int64) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	// UpdateFields applies a creator-initiated direct field update and
	// returns the number of rows touched.
	UpdateFields(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch BookingPatch) (int64, error)
	SetOpenSeats(ctx context.Context, dbtx db.DBTX, id uuid.UUID, seats int32) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ParticipantRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, p booking.Participant) error
	Find(ctx context.Context, dbtx db.DBTX, bookingID, userID uuid.UUID) (*ParticipantSnapshot, error)
	Delete(ctx context.Context, dbtx db.DBTX, bookingID, userID uuid.UUID) (int64, error)
	CountByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (int64, error)
}

type InvitationRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, inv *invitation.Invitation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*InvitationSnapshot, error)
	Exists(ctx context.Context, dbtx db.DBTX, bookingID, userID uuid.UUID) (bool, error)
	// Delete is idempotent: removing an absent invitation returns zero rows,
	// not an error.
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error)
	DeleteByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	// FindForUpdate locks the user row so concurrent wallet mutations
	// serialize on it.
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*UserSnapshot, error)
	FindByDNI(ctx context.Context, dbtx db.DBTX, dni string) (*UserSnapshot, error)
	UpdateBalance(ctx context.Context, dbtx db.DBTX, id uuid.UUID, balanceCents int64) error
	UpdateProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch ProfilePatch) (int64, error)
}

type WalletEntryRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, entry WalletEntry) error
}

type RatingRepository interface {
	// RecalcUserRating rewrites the denormalized average from rating rows.
	RecalcUserRating(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
