package core

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names of the serialized record mapping.
const (
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDescription = "description"
)

// Record converts the expense to its plain field mapping for serialization.
// The amount is emitted as a JSON number.
func (e Expense) Record() map[string]any {
	return map[string]any{
		FieldDate:        e.Date.String(),
		FieldCategory:    e.Category,
		FieldAmount:      json.Number(e.Amount.String()),
		FieldDescription: e.Description,
	}
}

// ExpenseFromRecord rebuilds an Expense from a plain field mapping.
//
// A missing field or a field of the wrong primitive kind (for example a
// non-numeric amount) fails with ErrMalformedRecord. Field values are not
// validated here; Validate covers that separately.
func ExpenseFromRecord(rec map[string]any) (Expense, error) {
	rawDate, err := stringField(rec, FieldDate)
	if err != nil {
		return Expense{}, err
	}
	category, err := stringField(rec, FieldCategory)
	if err != nil {
		return Expense{}, err
	}
	description, err := stringField(rec, FieldDescription)
	if err != nil {
		return Expense{}, err
	}
	amount, err := amountField(rec)
	if err != nil {
		return Expense{}, err
	}

	date, err := ParseDate(rawDate)
	if err != nil {
		return Expense{}, err
	}

	return Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	}, nil
}

func stringField(rec map[string]any, name string) (string, error) {
	v, ok := rec[name]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedRecord, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrMalformedRecord, name)
	}
	return s, nil
}

func amountField(rec map[string]any) (decimal.Decimal, error) {
	v, ok := rec[FieldAmount]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: missing field %q", ErrMalformedRecord, FieldAmount)
	}
	switch n := v.(type) {
	case json.Number:
		a, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: field %q is not numeric", ErrMalformedRecord, FieldAmount)
		}
		return a, nil
	case float64:
		// Decoders without UseNumber hand numbers over as float64.
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: field %q is not numeric", ErrMalformedRecord, FieldAmount)
	}
}
