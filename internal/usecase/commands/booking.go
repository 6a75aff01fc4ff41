package commands

import (
	"context"
	"time"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/skill"
	"padelbook/internal/domain/wallet"
	"padelbook/internal/infra"
	"padelbook/internal/pkg/clock"
	"padelbook/internal/pkg/errs"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrNotBookingCreator  = errs.New("booking not owned by user")
	ErrNotParticipant     = errs.New("user is not a participant of booking")
	ErrSlotTaken          = errs.New("court slot already booked")
	ErrTierNotAllowed     = errs.New("skill tier not allowed for booking")
	ErrInsufficientFunds  = errs.New("insufficient wallet balance")
	ErrBalanceCapExceeded = errs.New("wallet balance cap exceeded")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	ModifyBooking(ctx context.Context, bookingID uuid.UUID, patch shared.BookingPatch, actorID uuid.UUID) (int64, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) (*CancelBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	prices booking.PriceTable
	clock  clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, prices booking.PriceTable, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, prices: prices, clock: clk}
}

type CreateBookingRequest struct {
	CourtID         uuid.UUID
	StartTime       time.Time
	DurationMinutes int32
	Mode            string
	RequiredTier    string
}

type CreateBookingResult struct {
	BookingID    uuid.UUID
	ChargedCents int64
}

type CancelBookingResult struct {
	RefundCents    int64
	BookingDeleted bool
}

// CreateBooking reserves a court slot, charges the creator and seats them as
// first participant, all in one transaction. Failure order is fixed: unknown
// user, tier mismatch, slot conflict, then funds.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	slot, err := booking.NewTimeSlot(req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	mode := booking.Mode(req.Mode)
	if !mode.IsValid() {
		return nil, booking.ErrInvalidMode
	}
	requiredTier, err := skill.NewTier(req.RequiredTier)
	if err != nil {
		return nil, err
	}
	cost, err := uc.prices.CostFor(mode, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	var result CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		user, derr := tx.Users().FindForUpdate(ctx, tx.DB(), userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		if !user.Tier.CanPlay(requiredTier) {
			return ErrTierNotAllowed
		}

		taken, derr := tx.Bookings().HasOverlap(ctx, tx.DB(), req.CourtID, slot, nil)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrSlotTaken
		}

		balance, derr := wallet.NewBalance(user.BalanceCents)
		if derr != nil {
			return derr
		}
		debited, derr := balance.Debit(cost)
		if derr != nil {
			return errs.Mark(derr, ErrInsufficientFunds)
		}

		b, derr := booking.NewBooking(req.CourtID, slot, requiredTier, mode)
		if derr != nil {
			return derr
		}
		bookingID, derr := tx.Bookings().Create(ctx, tx.DB(), b, cost.Cents())
		if derr != nil {
			// The exclusion constraint is the second line of defense against a
			// concurrent insert that slipped past the overlap check.
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrSlotTaken
			}
			return derr
		}

		if derr = tx.Users().UpdateBalance(ctx, tx.DB(), userID, debited.Cents()); derr != nil {
			return derr
		}
		if derr = tx.WalletEntries().Insert(ctx, tx.DB(), shared.WalletEntry{
			UserID:      userID,
			BookingID:   &bookingID,
			AmountCents: -cost.Cents(),
			Reason:      shared.EntryReasonBookingCharge,
			CreatedAt:   uc.clock.Now(),
		}); derr != nil {
			return derr
		}
		if derr = tx.Participants().Insert(ctx, tx.DB(), booking.NewCreatorParticipant(userID, bookingID)); derr != nil {
			return derr
		}

		result = CreateBookingResult{BookingID: bookingID, ChargedCents: cost.Cents()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ModifyBooking applies a direct field update on behalf of the booking's
// creator. It deliberately skips re-running the availability and pricing
// checks; edited bookings keep the price they were charged at.
func (uc *bookingUseCaseImpl) ModifyBooking(ctx context.Context, bookingID uuid.UUID, patch shared.BookingPatch, actorID uuid.UUID) (int64, error) {
	if patch.RequiredTier != nil && !patch.RequiredTier.IsValid() {
		return 0, skill.ErrInvalidTier
	}
	if patch.Mode != nil && !patch.Mode.IsValid() {
		return 0, booking.ErrInvalidMode
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return 0, booking.ErrInvalidStatus
	}

	var updated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		part, derr := tx.Participants().Find(ctx, tx.DB(), bookingID, actorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrNotBookingCreator
			}
			return derr
		}
		if !part.IsCreator {
			return ErrNotBookingCreator
		}
		if patch.IsEmpty() {
			return nil
		}

		updated, derr = tx.Bookings().UpdateFields(ctx, tx.DB(), bookingID, patch)
		return derr
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// CancelBooking removes the acting user from the booking and refunds their
// seat at the current per-mode price. The last participant leaving deletes
// the booking and any invitations still pending against it.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) (*CancelBookingResult, error) {
	var result CancelBookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		if _, derr = tx.Participants().Find(ctx, tx.DB(), bookingID, actorID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrNotParticipant
			}
			return derr
		}

		refund, derr := uc.prices.CostFor(snap.Mode, snap.DurationMinutes)
		if derr != nil {
			return derr
		}
		user, derr := tx.Users().FindForUpdate(ctx, tx.DB(), actorID)
		if derr != nil {
			return derr
		}
		balance, derr := wallet.NewBalance(user.BalanceCents)
		if derr != nil {
			return derr
		}
		// A refund past the wallet cap fails the whole cancellation. Clamping
		// would silently destroy money.
		credited, derr := balance.Credit(refund)
		if derr != nil {
			return errs.Mark(derr, ErrBalanceCapExceeded)
		}

		if derr = tx.Users().UpdateBalance(ctx, tx.DB(), actorID, credited.Cents()); derr != nil {
			return derr
		}
		if derr = tx.WalletEntries().Insert(ctx, tx.DB(), shared.WalletEntry{
			UserID:      actorID,
			BookingID:   &bookingID,
			AmountCents: refund.Cents(),
			Reason:      shared.EntryReasonBookingRefund,
			CreatedAt:   uc.clock.Now(),
		}); derr != nil {
			return derr
		}
		if _, derr = tx.Participants().Delete(ctx, tx.DB(), bookingID, actorID); derr != nil {
			return derr
		}

		remaining, derr := tx.Participants().CountByBooking(ctx, tx.DB(), bookingID)
		if derr != nil {
			return derr
		}
		if remaining == 0 {
			if derr = tx.Invitations().DeleteByBooking(ctx, tx.DB(), bookingID); derr != nil {
				return derr
			}
			if derr = tx.Bookings().Delete(ctx, tx.DB(), bookingID); derr != nil {
				return derr
			}
			result = CancelBookingResult{RefundCents: refund.Cents(), BookingDeleted: true}
			return nil
		}

		slot, derr := snap.Slot()
		if derr != nil {
			return derr
		}
		b := booking.ReconstructBooking(snap.ID, snap.CourtID, slot, snap.RequiredTier, snap.Mode, snap.OpenSeats, snap.Status, snap.CreatedAt, snap.CreatedAt)
		if derr = b.ReleaseSeat(); derr != nil {
			return derr
		}
		if derr = tx.Bookings().SetOpenSeats(ctx, tx.DB(), bookingID, b.OpenSeats()); derr != nil {
			return derr
		}
		result = CancelBookingResult{RefundCents: refund.Cents()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
