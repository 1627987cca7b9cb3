package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func expense(category, amount string) Expense {
	return Expense{
		Date:        NewDate(2024, 1, 15),
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Description: "x",
	}
}

func TestSummarizeByCategory(t *testing.T) {
	expenses := []Expense{
		expense("Food", "25.50"),
		expense("Transport", "15.00"),
		expense("food", "12.25"),
	}

	got := SummarizeByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("got %d groups, want 2", len(got))
	}
	// First-occurrence order and original case.
	if got[0].Name != "Food" || got[1].Name != "Transport" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Amount.String() != "37.75" || got[0].Count != 2 {
		t.Fatalf("Food group = %s (%d entries)", got[0].Amount, got[0].Count)
	}
	if got[1].Amount.String() != "15" || got[1].Count != 1 {
		t.Fatalf("Transport group = %s (%d entries)", got[1].Amount, got[1].Count)
	}
}

func TestSummarizeByCategoryEmpty(t *testing.T) {
	if got := SummarizeByCategory(nil); len(got) != 0 {
		t.Fatalf("expected no groups, got %+v", got)
	}
}
