package queries

import (
	"context"

	"padelbook/internal/domain/skill"
	"padelbook/internal/infra"
	"padelbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	// ListOpenForUser lists shared bookings with free seats whose required
	// tier is compatible with the user's own, excluding bookings the user
	// already participates in.
	ListOpenForUser(ctx context.Context, userID uuid.UUID) ([]*OpenBookingView, error)
}

type BookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindOpenByTiers(ctx context.Context, tiers []string, excludeUserID uuid.UUID) ([]*OpenBookingView, error)
}

type UserTierReader interface {
	TierByID(ctx context.Context, userID uuid.UUID) (skill.Tier, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	users     UserTierReader
}

func NewBookingQueries(readStore BookingReadStore, users UserTierReader) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, users: users}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListOpenForUser(ctx context.Context, userID uuid.UUID) ([]*OpenBookingView, error) {
	tier, err := q.users.TierByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	compatible := tier.CompatibleWith()
	tiers := make([]string, len(compatible))
	for i, t := range compatible {
		tiers[i] = t.String()
	}
	return q.readStore.FindOpenByTiers(ctx, tiers, userID)
}
