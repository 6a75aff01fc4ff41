package commands

import (
	"context"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/invitation"
	"padelbook/internal/domain/wallet"
	"padelbook/internal/infra"
	"padelbook/internal/pkg/clock"
	"padelbook/internal/pkg/errs"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvitationNotFound  = errs.New("invitation not found")
	ErrDuplicateInvitation = errs.New("invitation already exists for user and booking")
	ErrAlreadyParticipant  = errs.New("user already participates in booking")
	ErrNoSeatsAvailable    = errs.New("no open seats left on booking")
)

type RequestInvitationResult struct {
	InvitationID uuid.UUID
}

type InvitationCommands interface {
	RequestInvitation(ctx context.Context, bookingID, targetUserID uuid.UUID) (*RequestInvitationResult, error)
	AcceptInvitation(ctx context.Context, invitationID uuid.UUID) error
	RejectInvitation(ctx context.Context, invitationID uuid.UUID) error
}

type invitationUseCaseImpl struct {
	uow    shared.UnitOfWork
	prices booking.PriceTable
	clock  clock.Clock
}

func NewInvitationUseCase(uow shared.UnitOfWork, prices booking.PriceTable, clk clock.Clock) InvitationCommands {
	return &invitationUseCaseImpl{uow: uow, prices: prices, clock: clk}
}

// RequestInvitation records a join request against a booking's open seats.
// Funds are checked now and re-checked at acceptance, since the balance may
// move between the two.
func (uc *invitationUseCaseImpl) RequestInvitation(ctx context.Context, bookingID, targetUserID uuid.UUID) (*RequestInvitationResult, error) {
	var result RequestInvitationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		// Joiners always pay the shared per-seat rate for the booking's
		// current duration.
		cost, derr := uc.prices.CostFor(booking.ModeShared, snap.DurationMinutes)
		if derr != nil {
			return derr
		}

		target, derr := tx.Users().FindForUpdate(ctx, tx.DB(), targetUserID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		balance, derr := wallet.NewBalance(target.BalanceCents)
		if derr != nil {
			return derr
		}
		if !balance.CanCover(cost) {
			return ErrInsufficientFunds
		}
		if !target.Tier.CanPlay(snap.RequiredTier) {
			return ErrTierNotAllowed
		}

		exists, derr := tx.Invitations().Exists(ctx, tx.DB(), bookingID, targetUserID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateInvitation
		}
		if _, derr = tx.Participants().Find(ctx, tx.DB(), bookingID, targetUserID); derr == nil {
			return ErrAlreadyParticipant
		} else if !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}

		id, derr := tx.Invitations().Insert(ctx, tx.DB(), invitation.NewInvitation(bookingID, targetUserID))
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateInvitation
			}
			return derr
		}
		result = RequestInvitationResult{InvitationID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AcceptInvitation seats the invited user: debit, participant insert, seat
// decrement and invitation removal commit together or not at all. An
// invitation that outlived the last open seat is voided: its row is removed
// in a committed transaction of its own before the failure is surfaced.
func (uc *invitationUseCaseImpl) AcceptInvitation(ctx context.Context, invitationID uuid.UUID) error {
	var voided bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, derr := tx.Invitations().FindForUpdate(ctx, tx.DB(), invitationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrInvitationNotFound
			}
			return derr
		}
		snap, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), inv.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrInvitationNotFound
			}
			return derr
		}

		if snap.OpenSeats <= 0 {
			if _, derr = tx.Invitations().Delete(ctx, tx.DB(), invitationID); derr != nil {
				return derr
			}
			voided = true
			return nil
		}

		user, derr := tx.Users().FindForUpdate(ctx, tx.DB(), inv.UserID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		// Mandatory re-check: the balance may have dropped since the
		// invitation was requested.
		cost, derr := uc.prices.CostFor(booking.ModeShared, snap.DurationMinutes)
		if derr != nil {
			return derr
		}
		balance, derr := wallet.NewBalance(user.BalanceCents)
		if derr != nil {
			return derr
		}
		debited, derr := balance.Debit(cost)
		if derr != nil {
			return errs.Mark(derr, ErrInsufficientFunds)
		}

		if derr = tx.Users().UpdateBalance(ctx, tx.DB(), inv.UserID, debited.Cents()); derr != nil {
			return derr
		}
		if derr = tx.WalletEntries().Insert(ctx, tx.DB(), shared.WalletEntry{
			UserID:      inv.UserID,
			BookingID:   &inv.BookingID,
			AmountCents: -cost.Cents(),
			Reason:      shared.EntryReasonInvitationJoin,
			CreatedAt:   uc.clock.Now(),
		}); derr != nil {
			return derr
		}
		if derr = tx.Participants().Insert(ctx, tx.DB(), booking.NewJoinerParticipant(inv.UserID, inv.BookingID)); derr != nil {
			return derr
		}

		slot, derr := snap.Slot()
		if derr != nil {
			return derr
		}
		b := booking.ReconstructBooking(snap.ID, snap.CourtID, slot, snap.RequiredTier, snap.Mode, snap.OpenSeats, snap.Status, snap.CreatedAt, snap.CreatedAt)
		if derr = b.ClaimSeat(); derr != nil {
			return derr
		}
		if derr = tx.Bookings().SetOpenSeats(ctx, tx.DB(), inv.BookingID, b.OpenSeats()); derr != nil {
			return derr
		}

		_, derr = tx.Invitations().Delete(ctx, tx.DB(), invitationID)
		return derr
	})
	if err != nil {
		return err
	}
	if voided {
		return ErrNoSeatsAvailable
	}
	return nil
}

// RejectInvitation deletes the invitation. Rejecting one that no longer
// exists is not an error.
func (uc *invitationUseCaseImpl) RejectInvitation(ctx context.Context, invitationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Invitations().Delete(ctx, tx.DB(), invitationID)
		return derr
	})
}
