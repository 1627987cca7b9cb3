// Package core defines the expense domain model and its validation rules.
//
// Amounts are held as exact decimals so that summing a collection never
// accumulates cent-level float drift.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a raw amount string into a positive decimal.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted.
// Zero, negative and unparsable values are rejected with ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")

	a, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if err := validAmount(a); err != nil {
		return decimal.Zero, err
	}
	return a, nil
}

func validAmount(a decimal.Decimal) error {
	if a.Sign() <= 0 {
		return fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return nil
}

// Sum returns the exact total of the given expenses.
func Sum(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
