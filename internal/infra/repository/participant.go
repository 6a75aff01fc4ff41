package repository

import (
	"context"

	"padelbook/internal/domain/booking"
	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/pkg/pgconv"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ParticipantRepository struct {
	db db.DBTX
}

func NewParticipantRepository(dbtx db.DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: dbtx}
}

func (r *ParticipantRepository) Insert(ctx context.Context, tx db.DBTX, p booking.Participant) error {
	const query = `
		INSERT INTO participants (booking_id, user_id, is_creator, paid)
		VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, query, p.BookingID, p.UserID, p.IsCreator, p.Paid); err != nil {
		return infra.WrapRepoErr("failed to insert participant", err)
	}
	return nil
}

func (r *ParticipantRepository) Find(ctx context.Context, tx db.DBTX, bookingID, userID uuid.UUID) (*shared.ParticipantSnapshot, error) {
	const query = `
		SELECT booking_id, user_id, is_creator, paid, joined_at
		FROM participants
		WHERE booking_id = $1 AND user_id = $2`

	var snap shared.ParticipantSnapshot
	err := tx.QueryRow(ctx, query, bookingID, userID).Scan(
		&snap.BookingID,
		&snap.UserID,
		&snap.IsCreator,
		&snap.Paid,
		&snap.JoinedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("participant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find participant", err)
	}
	return &snap, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, tx db.DBTX, bookingID, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM participants WHERE booking_id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, query, bookingID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete participant", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ParticipantRepository) CountByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM participants WHERE booking_id = $1`

	var count int64
	if err := tx.QueryRow(ctx, query, bookingID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count participants", err)
	}
	return count, nil
}
