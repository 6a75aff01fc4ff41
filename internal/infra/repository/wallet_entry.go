package repository

import (
	"context"
	"time"

	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type WalletEntryRepository struct {
	db db.DBTX
}

func NewWalletEntryRepository(dbtx db.DBTX) *WalletEntryRepository {
	return &WalletEntryRepository{db: dbtx}
}

// Insert appends one ledger line. Entries are never updated or deleted; the
// ledger is the audit trail for every balance mutation.
func (r *WalletEntryRepository) Insert(ctx context.Context, tx db.DBTX, entry shared.WalletEntry) error {
	const query = `
		INSERT INTO wallet_entries (id, user_id, booking_id, amount_cents, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))`

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var createdAt *time.Time
	if !entry.CreatedAt.IsZero() {
		createdAt = &entry.CreatedAt
	}
	if _, err := tx.Exec(ctx, query, id, entry.UserID, entry.BookingID, entry.AmountCents, entry.Reason, createdAt); err != nil {
		return infra.WrapRepoErr("failed to insert wallet entry", err)
	}
	return nil
}
