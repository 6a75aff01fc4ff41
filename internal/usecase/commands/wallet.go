package commands

import (
	"context"
	"errors"

	"padelbook/internal/domain/wallet"
	"padelbook/internal/infra"
	"padelbook/internal/pkg/clock"
	"padelbook/internal/pkg/errs"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdjustWalletResult struct {
	BalanceCents int64
}

type WalletCommands interface {
	AdjustWallet(ctx context.Context, userID uuid.UUID, deltaCents int64) (*AdjustWalletResult, error)
}

type walletUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWalletUseCase(uow shared.UnitOfWork, clk clock.Clock) WalletCommands {
	return &walletUseCaseImpl{uow: uow, clock: clk}
}

// AdjustWallet applies a signed top-up or withdrawal under the ledger bounds
// and appends the matching ledger entry.
func (uc *walletUseCaseImpl) AdjustWallet(ctx context.Context, userID uuid.UUID, deltaCents int64) (*AdjustWalletResult, error) {
	var result AdjustWalletResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		user, derr := tx.Users().FindForUpdate(ctx, tx.DB(), userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		balance, derr := wallet.NewBalance(user.BalanceCents)
		if derr != nil {
			return derr
		}
		next, derr := balance.Apply(wallet.NewAmount(deltaCents))
		if derr != nil {
			switch {
			case errors.Is(derr, wallet.ErrInsufficientFunds):
				return errs.Mark(derr, ErrInsufficientFunds)
			case errors.Is(derr, wallet.ErrBalanceCapExceeded):
				return errs.Mark(derr, ErrBalanceCapExceeded)
			}
			return derr
		}

		if derr = tx.Users().UpdateBalance(ctx, tx.DB(), userID, next.Cents()); derr != nil {
			return derr
		}
		if derr = tx.WalletEntries().Insert(ctx, tx.DB(), shared.WalletEntry{
			UserID:      userID,
			AmountCents: deltaCents,
			Reason:      shared.EntryReasonManualAdjust,
			CreatedAt:   uc.clock.Now(),
		}); derr != nil {
			return derr
		}
		result = AdjustWalletResult{BalanceCents: next.Cents()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
