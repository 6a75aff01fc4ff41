package request

import (
	"padelbook/internal/domain/wallet"
)

type AdjustWalletRequest struct {
	// Amount is a signed euro value with at most two decimals. Positive tops
	// up, negative withdraws.
	Amount float64 `json:"amount" binding:"required"`
}

func (r AdjustWalletRequest) ToCents() (int64, error) {
	amount, err := wallet.NewAmountFromEuros(r.Amount)
	if err != nil {
		return 0, err
	}
	return amount.Cents(), nil
}
