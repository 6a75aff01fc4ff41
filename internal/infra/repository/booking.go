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

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// HasOverlap locks every active booking that would collide with the slot.
// The FOR UPDATE is what serializes two concurrent creates on the same
// court: the loser blocks here until the winner commits, then sees its row.
func (r *BookingRepository) HasOverlap(ctx context.Context, tx db.DBTX, courtID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT id FROM bookings
		WHERE court_id = $1
		  AND status = 'pending'
		  AND ($4::uuid IS NULL OR id <> $4)
		  AND start_time < $3
		  AND $2 < start_time + make_interval(mins => duration_minutes)
		FOR UPDATE`

	rows, err := tx.Query(ctx, query, courtID, slot.Start(), slot.End(), excludeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to scan overlapping bookings", err)
	}
	return found, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking, seatPriceCents int64) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, court_id, start_time, duration_minutes, required_tier, mode, status, open_seats, seat_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.CourtID(),
		b.Slot().Start(),
		b.Slot().DurationMinutes(),
		b.RequiredTier().String(),
		b.Mode().String(),
		b.Status().String(),
		b.OpenSeats(),
		seatPriceCents,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, court_id, start_time, duration_minutes, required_tier, mode, status, open_seats, seat_price_cents, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var snap shared.BookingSnapshot
	var tier, mode, status string
	err := tx.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.CourtID,
		&snap.StartTime,
		&snap.DurationMinutes,
		&tier,
		&mode,
		&status,
		&snap.OpenSeats,
		&snap.PriceCents,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	snap.RequiredTier = skillTier(tier)
	snap.Mode = booking.Mode(mode)
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingRepository) UpdateFields(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.BookingPatch) (int64, error) {
	const query = `
		UPDATE bookings SET
			start_time = COALESCE($2, start_time),
			duration_minutes = COALESCE($3, duration_minutes),
			required_tier = COALESCE($4, required_tier),
			mode = COALESCE($5, mode),
			open_seats = COALESCE($6, open_seats),
			status = COALESCE($7, status),
			updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		id,
		patch.StartTime,
		patch.DurationMinutes,
		tierPtr(patch.RequiredTier),
		modePtr(patch.Mode),
		patch.OpenSeats,
		statusPtr(patch.Status),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update booking fields", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) SetOpenSeats(ctx context.Context, tx db.DBTX, id uuid.UUID, seats int32) error {
	const query = `UPDATE bookings SET open_seats = $2, updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, seats); err != nil {
		return infra.WrapRepoErr("failed to update booking seats", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM bookings WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}
