package readstore

import (
	"context"

	"padelbook/internal/domain/skill"
	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/pkg/pgconv"
	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) SettingsByID(ctx context.Context, userID uuid.UUID) (*queries.UserSettingsView, error) {
	const query = `
		SELECT id, dni, name, surname, postal_code, tier, balance_cents, rating
		FROM users
		WHERE id = $1`

	var v queries.UserSettingsView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.DNI, &v.Name, &v.Surname, &v.PostalCode, &v.Tier, &v.BalanceCents, &v.Rating,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user settings", err)
	}
	return &v, nil
}

func (r *UserReadStore) TierByID(ctx context.Context, userID uuid.UUID) (skill.Tier, error) {
	const query = `SELECT tier FROM users WHERE id = $1`

	var tier string
	if err := r.db.QueryRow(ctx, query, userID).Scan(&tier); err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find user tier", err)
	}
	return skill.Tier(tier), nil
}

func (r *UserReadStore) PostalCodeByID(ctx context.Context, userID uuid.UUID) (*int32, error) {
	const query = `SELECT postal_code FROM users WHERE id = $1`

	var cp *int32
	if err := r.db.QueryRow(ctx, query, userID).Scan(&cp); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user postal code", err)
	}
	return cp, nil
}
