package booking

import (
	"errors"

	"padelbook/internal/domain/wallet"
)

var ErrInvalidDuration = errors.New("invalid booking duration")

const sharedSeats = 4

// PriceTable maps a slot duration in minutes to its base price. It is
// immutable configuration injected at construction so tests can substitute
// alternate tables.
type PriceTable map[int32]wallet.Amount

// DefaultPriceTable holds the fixed venue prices: 60min 5.00, 90min 7.00,
// 120min 9.00 euros.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		60:  wallet.NewAmount(500),
		90:  wallet.NewAmount(700),
		120: wallet.NewAmount(900),
	}
}

func (p PriceTable) BasePrice(durationMin int32) (wallet.Amount, error) {
	price, ok := p[durationMin]
	if !ok {
		return wallet.Amount{}, ErrInvalidDuration
	}
	return price, nil
}

// CostFor returns the per-participant cost: exclusive bookings charge the
// full base price once to the creator, shared bookings a quarter per seat so
// the venue is fully paid once all four seats fill. The quartering is a fixed
// domain rule, not configurable.
func (p PriceTable) CostFor(mode Mode, durationMin int32) (wallet.Amount, error) {
	base, err := p.BasePrice(durationMin)
	if err != nil {
		return wallet.Amount{}, err
	}
	if mode == ModeShared {
		return base.DivideBy(sharedSeats), nil
	}
	return base, nil
}
