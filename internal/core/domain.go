package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire form of expense dates.
const DateLayout = "2006-01-02"

type (
	// Date is a calendar date. The time portion is always midnight UTC.
	Date struct {
		time.Time
	}

	// Expense is one recorded transaction.
	Expense struct {
		Date        Date
		Category    string
		Amount      decimal.Decimal
		Description string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyDescription = errors.New("empty description")
	ErrMalformedRecord  = errors.New("malformed record")
)

// ParseDate parses a YYYY-MM-DD string into a Date. Both format and
// calendar validity are checked (2024-02-30 is rejected).
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Date{Time: t}, nil
}

// Today returns the current date.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// NormalizeCategory trims the raw category label, preserving its case.
func NormalizeCategory(raw string) (string, error) {
	c := strings.TrimSpace(raw)
	if c == "" {
		return "", ErrEmptyCategory
	}
	return c, nil
}

// NormalizeDescription trims the raw description. Empty descriptions are
// rejected.
func NormalizeDescription(raw string) (string, error) {
	d := strings.TrimSpace(raw)
	if d == "" {
		return "", ErrEmptyDescription
	}
	return d, nil
}

// NewExpense builds a validated Expense from raw field values. All four
// fields are checked and every failure is reported, joined into a single
// error, so a caller can surface all problems at once.
func NewExpense(date, category, amount, description string) (Expense, error) {
	var errs []error

	d, err := ParseDate(date)
	if err != nil {
		errs = append(errs, err)
	}
	c, err := NormalizeCategory(category)
	if err != nil {
		errs = append(errs, err)
	}
	a, err := ParseAmount(amount)
	if err != nil {
		errs = append(errs, err)
	}
	desc, err := NormalizeDescription(description)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return Expense{}, errors.Join(errs...)
	}
	return Expense{Date: d, Category: c, Amount: a, Description: desc}, nil
}

// Validate re-checks an already constructed Expense, aggregating every
// failure. Used when loading persisted data.
func (e Expense) Validate() error {
	var errs []error

	if e.Date.IsZero() {
		errs = append(errs, fmt.Errorf("%w: zero date", ErrInvalidDate))
	}
	if strings.TrimSpace(e.Category) == "" {
		errs = append(errs, ErrEmptyCategory)
	}
	if err := validAmount(e.Amount); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, ErrEmptyDescription)
	}

	return errors.Join(errs...)
}

// SameCategory reports whether the expense belongs to the given category,
// compared case-insensitively.
func (e Expense) SameCategory(category string) bool {
	return strings.EqualFold(e.Category, strings.TrimSpace(category))
}
