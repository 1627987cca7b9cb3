package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"12.34", "12.34", true},
		{"12,34", "12.34", true},
		{"0.01", "0.01", true},
		{" 25.50 ", "25.5", true},
		{"100", "100", true},
		{"0", "", false},
		{"-5", "", false},
		{"", "", false},
		{"abc", "", false},
		{"12.3.4", "", false},
		{"NaN", "", false},
		{"Inf", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.raw)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q): unexpected error %v", tc.raw, err)
			}
			if got.String() != tc.want {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tc.raw, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q): want ErrInvalidAmount, got %v", tc.raw, err)
		}
	}
}

func TestSumIsExact(t *testing.T) {
	// 0.1+0.2 style inputs drift with float64 summation.
	var expenses []Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, Expense{Amount: decimal.RequireFromString("0.1")})
	}
	if got := Sum(expenses); got.String() != "1" {
		t.Fatalf("Sum = %s, want 1", got)
	}
}

func TestSumEmpty(t *testing.T) {
	if got := Sum(nil); !got.IsZero() {
		t.Fatalf("Sum(nil) = %s, want 0", got)
	}
}
