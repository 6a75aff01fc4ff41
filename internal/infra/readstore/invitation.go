package readstore

import (
	"context"

	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvitationReadStore struct {
	db db.DBTX
}

func NewInvitationReadStore(dbtx db.DBTX) *InvitationReadStore {
	return &InvitationReadStore{db: dbtx}
}

// FindPendingByCreator lists join requests waiting on bookings the user
// created, with enough requester context to decide on them.
func (r *InvitationReadStore) FindPendingByCreator(ctx context.Context, creatorID uuid.UUID) ([]*queries.PendingInvitationView, error) {
	const query = `
		SELECT i.id, i.booking_id, i.user_id, u.name, u.tier, u.rating, i.created_at
		FROM invitations i
		JOIN participants p ON p.booking_id = i.booking_id AND p.is_creator
		JOIN users u ON u.id = i.user_id
		WHERE p.user_id = $1
		ORDER BY i.created_at`

	rows, err := r.db.Query(ctx, query, creatorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending invitations", err)
	}
	defer rows.Close()

	var views []*queries.PendingInvitationView
	for rows.Next() {
		var v queries.PendingInvitationView
		if err := rows.Scan(
			&v.ID, &v.BookingID, &v.RequesterID, &v.RequesterName,
			&v.RequesterTier, &v.RequesterRating, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending invitation row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending invitation rows", err)
	}
	return views, nil
}
