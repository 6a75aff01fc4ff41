package repository

import (
	"context"

	"padelbook/internal/domain/skill"
	"padelbook/internal/domain/user"
	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/pkg/pgconv"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, dni, name, surname, password_hash, tier, balance_cents, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(),
		u.DNI().String(),
		u.Name(),
		u.Surname(),
		u.PasswordHash(),
		u.Tier().String(),
		u.Balance().Cents(),
		u.Rating(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, dni, name, surname, password_hash, postal_code, tier, balance_cents, rating
		FROM users
		WHERE id = $1
		FOR UPDATE`

	return r.scanUser(tx.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByDNI(ctx context.Context, tx db.DBTX, dni string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, dni, name, surname, password_hash, postal_code, tier, balance_cents, rating
		FROM users
		WHERE dni = $1`

	return r.scanUser(tx.QueryRow(ctx, query, dni))
}

func (r *UserRepository) scanUser(row interface{ Scan(dest ...any) error }) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	var tier string
	err := row.Scan(
		&snap.ID,
		&snap.DNI,
		&snap.Name,
		&snap.Surname,
		&snap.PasswordHash,
		&snap.PostalCode,
		&tier,
		&snap.BalanceCents,
		&snap.Rating,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	snap.Tier = skill.Tier(tier)
	return &snap, nil
}

func (r *UserRepository) UpdateBalance(ctx context.Context, tx db.DBTX, id uuid.UUID, balanceCents int64) error {
	const query = `UPDATE users SET balance_cents = $2, updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, balanceCents); err != nil {
		return infra.WrapRepoErr("failed to update user balance", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.ProfilePatch) (int64, error) {
	const query = `
		UPDATE users SET
			name = COALESCE($2, name),
			surname = COALESCE($3, surname),
			postal_code = COALESCE($4, postal_code),
			tier = COALESCE($5, tier),
			updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, patch.Name, patch.Surname, patch.PostalCode, tierPtr(patch.Tier))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update user profile", err)
	}
	return tag.RowsAffected(), nil
}
