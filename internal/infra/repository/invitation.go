package repository

import (
	"context"

	"padelbook/internal/domain/invitation"
	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/pkg/pgconv"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvitationRepository struct {
	db db.DBTX
}

func NewInvitationRepository(dbtx db.DBTX) *InvitationRepository {
	return &InvitationRepository{db: dbtx}
}

func (r *InvitationRepository) Insert(ctx context.Context, tx db.DBTX, inv *invitation.Invitation) (uuid.UUID, error) {
	const query = `
		INSERT INTO invitations (id, booking_id, user_id, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, inv.ID(), inv.BookingID(), inv.UserID(), string(inv.State())).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert invitation", err)
	}
	return id, nil
}

func (r *InvitationRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.InvitationSnapshot, error) {
	const query = `
		SELECT id, booking_id, user_id, state, created_at
		FROM invitations
		WHERE id = $1
		FOR UPDATE`

	var snap shared.InvitationSnapshot
	var state string
	err := tx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.BookingID, &snap.UserID, &state, &snap.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invitation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invitation", err)
	}
	snap.State = invitation.State(state)
	return &snap, nil
}

func (r *InvitationRepository) Exists(ctx context.Context, tx db.DBTX, bookingID, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM invitations WHERE booking_id = $1 AND user_id = $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, bookingID, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check invitation existence", err)
	}
	return exists, nil
}

func (r *InvitationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM invitations WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete invitation", err)
	}
	return tag.RowsAffected(), nil
}

func (r *InvitationRepository) DeleteByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	const query = `DELETE FROM invitations WHERE booking_id = $1`

	if _, err := tx.Exec(ctx, query, bookingID); err != nil {
		return infra.WrapRepoErr("failed to delete invitations for booking", err)
	}
	return nil
}
