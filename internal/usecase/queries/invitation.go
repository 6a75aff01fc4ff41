package queries

import (
	"context"

	"github.com/google/uuid"
)

type InvitationQueries interface {
	// ListPendingForCreator lists join requests against bookings the user
	// created, so they can accept or reject them.
	ListPendingForCreator(ctx context.Context, creatorID uuid.UUID) ([]*PendingInvitationView, error)
}

type InvitationReadStore interface {
	FindPendingByCreator(ctx context.Context, creatorID uuid.UUID) ([]*PendingInvitationView, error)
}

type invitationQueriesImpl struct {
	readStore InvitationReadStore
}

func NewInvitationQueries(readStore InvitationReadStore) InvitationQueries {
	return &invitationQueriesImpl{readStore: readStore}
}

func (q *invitationQueriesImpl) ListPendingForCreator(ctx context.Context, creatorID uuid.UUID) ([]*PendingInvitationView, error) {
	return q.readStore.FindPendingByCreator(ctx, creatorID)
}
