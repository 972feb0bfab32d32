// Package core holds the domain model for the monthly ledger: transactions,
// money amounts, period scoping, and aggregation over transaction sets.
package core

import (
	"math"
	"strconv"
)

// Money is a monetary amount in cents of the base currency.
// Cents avoid floating-point drift in sums; convert to units only for display.
type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Units returns the amount in base currency units for display and JSON output.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the amount with up to two decimal places, no trailing zeros.
func (m Money) String() string {
	return strconv.FormatFloat(m.Units(), 'f', -1, 64)
}

// AmountToCents converts a request amount (base currency units) to cents.
//
// The amount must be a finite number greater than zero; zero is rejected by
// policy rather than by a presence check, so "amount": 0 fails the same way
// a missing amount does but with an explicit range error. Fractions beyond
// cents are rounded half-up.
func AmountToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	const maxSafe = float64(1<<63-1) / 100
	if amount >= maxSafe {
		return 0, ErrInvalidAmount
	}
	cents := int64(math.Floor(amount*100 + 0.5))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}
