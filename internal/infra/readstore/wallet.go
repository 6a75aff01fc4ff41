package readstore

import (
	"context"

	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletReadStore struct {
	db db.DBTX
}

func NewWalletReadStore(dbtx db.DBTX) *WalletReadStore {
	return &WalletReadStore{db: dbtx}
}

func (r *WalletReadStore) EntriesByUser(ctx context.Context, userID uuid.UUID) ([]*queries.WalletEntryView, error) {
	const query = `
		SELECT id, booking_id, amount_cents, reason, created_at
		FROM wallet_entries
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wallet entries", err)
	}
	defer rows.Close()

	var views []*queries.WalletEntryView
	for rows.Next() {
		var v queries.WalletEntryView
		if err := rows.Scan(&v.ID, &v.BookingID, &v.AmountCents, &v.Reason, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet entry row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate wallet entry rows", err)
	}
	return views, nil
}
