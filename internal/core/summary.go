package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryAmount is an amount aggregated under a category name.
type CategoryAmount struct {
	Name   string
	Count  int
	Amount decimal.Decimal
}

// SummarizeByCategory groups expenses by category, compared
// case-insensitively, and sums their amounts exactly. The result preserves
// first-occurrence order and the original case of the first occurrence, so
// identical input always yields identical output.
func SummarizeByCategory(expenses []Expense) []CategoryAmount {
	index := make(map[string]int)
	var out []CategoryAmount
	for _, e := range expenses {
		key := strings.ToLower(strings.TrimSpace(e.Category))
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, CategoryAmount{Name: e.Category})
			i = len(out) - 1
		}
		out[i].Count++
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}
