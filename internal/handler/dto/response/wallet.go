package response

import (
	"time"

	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletBalanceResponse struct {
	BalanceCents int64 `json:"balanceCents"`
}

type WalletEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	AmountCents int64      `json:"amountCents"`
	Reason      string     `json:"reason"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromWalletEntryView(v *queries.WalletEntryView) *WalletEntryResponse {
	return &WalletEntryResponse{
		ID:          v.ID,
		BookingID:   v.BookingID,
		AmountCents: v.AmountCents,
		Reason:      v.Reason,
		CreatedAt:   v.CreatedAt,
	}
}
