package queries

import (
	"context"

	"padelbook/internal/domain/skill"
	"padelbook/internal/infra"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	// GetSettings recomputes the user's denormalized rating average and then
	// returns the profile. The stored rating is derived data, never
	// authoritative.
	GetSettings(ctx context.Context, userID uuid.UUID) (*UserSettingsView, error)
	WalletHistory(ctx context.Context, userID uuid.UUID) ([]*WalletEntryView, error)
}

type UserReadStore interface {
	SettingsByID(ctx context.Context, userID uuid.UUID) (*UserSettingsView, error)
	TierByID(ctx context.Context, userID uuid.UUID) (skill.Tier, error)
	PostalCodeByID(ctx context.Context, userID uuid.UUID) (*int32, error)
}

type WalletReadStore interface {
	EntriesByUser(ctx context.Context, userID uuid.UUID) ([]*WalletEntryView, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
	wallet    WalletReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore, wallet WalletReadStore) UserQueries {
	return &userQueriesImpl{uow: uow, readStore: readStore, wallet: wallet}
}

func (q *userQueriesImpl) GetSettings(ctx context.Context, userID uuid.UUID) (*UserSettingsView, error) {
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ratings().RecalcUserRating(ctx, tx.DB(), userID)
	})
	if err != nil {
		return nil, err
	}

	settings, err := q.readStore.SettingsByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return settings, nil
}

func (q *userQueriesImpl) WalletHistory(ctx context.Context, userID uuid.UUID) ([]*WalletEntryView, error) {
	return q.wallet.EntriesByUser(ctx, userID)
}
