package readstore

import (
	"context"

	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.court_id, co.name, b.start_time, b.duration_minutes,
		       b.required_tier, b.mode, b.status, b.open_seats, b.seat_price_cents,
		       p.is_creator, b.created_at
		FROM bookings b
		JOIN participants p ON p.booking_id = b.id AND p.user_id = $1
		JOIN courts c ON c.id = b.court_id
		JOIN companies co ON co.id = c.company_id
		ORDER BY b.start_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.CourtID, &v.CompanyName, &v.StartTime, &v.DurationMinutes,
			&v.RequiredTier, &v.Mode, &v.Status, &v.OpenSeats, &v.SeatPriceCents,
			&v.IsCreator, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

// FindOpenByTiers lists joinable shared bookings for the given tier set,
// skipping bookings the user already participates in or has requested.
func (r *BookingReadStore) FindOpenByTiers(ctx context.Context, tiers []string, excludeUserID uuid.UUID) ([]*queries.OpenBookingView, error) {
	const query = `
		SELECT b.id, b.court_id, co.name, b.start_time, b.duration_minutes,
		       b.required_tier, b.open_seats, b.seat_price_cents
		FROM bookings b
		JOIN courts c ON c.id = b.court_id
		JOIN companies co ON co.id = c.company_id
		WHERE b.mode = 'shared'
		  AND b.status = 'pending'
		  AND b.open_seats > 0
		  AND b.required_tier = ANY($1)
		  AND NOT EXISTS (SELECT 1 FROM participants p WHERE p.booking_id = b.id AND p.user_id = $2)
		  AND NOT EXISTS (SELECT 1 FROM invitations i WHERE i.booking_id = b.id AND i.user_id = $2)
		ORDER BY b.start_time`

	rows, err := r.db.Query(ctx, query, tiers, excludeUserID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open bookings", err)
	}
	defer rows.Close()

	var views []*queries.OpenBookingView
	for rows.Next() {
		var v queries.OpenBookingView
		if err := rows.Scan(
			&v.ID, &v.CourtID, &v.CompanyName, &v.StartTime, &v.DurationMinutes,
			&v.RequiredTier, &v.OpenSeats, &v.SeatPriceCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan open booking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate open booking rows", err)
	}
	return views, nil
}
