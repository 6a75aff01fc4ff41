package commands

import (
	"context"

	"padelbook/internal/domain/skill"
	"padelbook/internal/infra"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch shared.ProfilePatch) (int64, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

// UpdateProfile rewrites the user's editable fields. Balance and rating are
// never touched here; the ledger and the rating recalculation own those.
func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, patch shared.ProfilePatch) (int64, error) {
	if patch.Tier != nil && !patch.Tier.IsValid() {
		return 0, skill.ErrInvalidTier
	}
	if patch.IsEmpty() {
		return 0, nil
	}

	var updated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, derr := tx.Users().UpdateProfile(ctx, tx.DB(), userID, patch)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		if rows == 0 {
			return ErrUserNotFound
		}
		updated = rows
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
