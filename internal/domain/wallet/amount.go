package wallet

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrBalanceCapExceeded = errors.New("balance cap exceeded")
	ErrInvalidAmount      = errors.New("invalid amount")
)

// Amounts are euro cents. The wallet balance is bounded to [0.00, 999.99]:
// a debit below zero or a credit past the cap fails, it never clamps.
const MaxBalanceCents int64 = 99999

type Amount struct {
	cents int64
}

func NewAmount(cents int64) Amount {
	return Amount{cents: cents}
}

// NewAmountFromEuros converts a 2-decimal euro value, rejecting sub-cent precision.
func NewAmountFromEuros(euros float64) (Amount, error) {
	cents := math.Round(euros * 100)
	if math.Abs(euros*100-cents) > 1e-6 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{cents: int64(cents)}, nil
}

func (a Amount) Cents() int64 {
	return a.cents
}

func (a Amount) Euros() float64 {
	return float64(a.cents) / 100.0
}

func (a Amount) String() string {
	return fmt.Sprintf("%.2f", a.Euros())
}

func (a Amount) Add(other Amount) Amount {
	return Amount{cents: a.cents + other.cents}
}

func (a Amount) Neg() Amount {
	return Amount{cents: -a.cents}
}

func (a Amount) IsNegative() bool {
	return a.cents < 0
}

// DivideBy splits an amount into equal shares. The pricing table only holds
// amounts divisible by four, so no remainder handling is needed here.
func (a Amount) DivideBy(n int64) Amount {
	return Amount{cents: a.cents / n}
}

type Balance struct {
	amount Amount
}

func NewBalance(cents int64) (Balance, error) {
	if cents < 0 || cents > MaxBalanceCents {
		return Balance{}, ErrInvalidAmount
	}
	return Balance{amount: Amount{cents: cents}}, nil
}

func ZeroBalance() Balance {
	return Balance{}
}

func (b Balance) Amount() Amount {
	return b.amount
}

func (b Balance) Cents() int64 {
	return b.amount.cents
}

// Debit removes cost from the balance, failing when it would go below zero.
func (b Balance) Debit(cost Amount) (Balance, error) {
	if cost.IsNegative() {
		return Balance{}, ErrInvalidAmount
	}
	next := b.amount.cents - cost.cents
	if next < 0 {
		return Balance{}, ErrInsufficientFunds
	}
	return Balance{amount: Amount{cents: next}}, nil
}

// Credit adds refund to the balance, failing when it would cross the cap.
func (b Balance) Credit(refund Amount) (Balance, error) {
	if refund.IsNegative() {
		return Balance{}, ErrInvalidAmount
	}
	next := b.amount.cents + refund.cents
	if next > MaxBalanceCents {
		return Balance{}, ErrBalanceCapExceeded
	}
	return Balance{amount: Amount{cents: next}}, nil
}

// Apply adds a signed delta under both bounds, used by wallet adjustments.
func (b Balance) Apply(delta Amount) (Balance, error) {
	if delta.IsNegative() {
		return b.Debit(delta.Neg())
	}
	return b.Credit(delta)
}

func (b Balance) CanCover(cost Amount) bool {
	return b.amount.cents >= cost.cents
}
