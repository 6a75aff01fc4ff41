package repository

import (
	"context"

	"padelbook/internal/infra"
	"padelbook/internal/infra/db"

	"github.com/google/uuid"
)

type RatingRepository struct {
	db db.DBTX
}

func NewRatingRepository(dbtx db.DBTX) *RatingRepository {
	return &RatingRepository{db: dbtx}
}

// RecalcUserRating rewrites the denormalized average on the user row from
// the rating rows. A user with no ratings goes back to zero.
func (r *RatingRepository) RecalcUserRating(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const query = `
		UPDATE users SET
			rating = COALESCE((
				SELECT ROUND(AVG(score)::numeric, 2)
				FROM ratings
				WHERE rated_user_id = $1
			), 0),
			updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to recalculate user rating", err)
	}
	return nil
}
