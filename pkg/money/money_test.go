package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound_HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1047.9166666", "1047.92"},
		{"0.005", "0.01"},
		{"2.675", "2.68"},
		{"10.004", "10.00"},
		{"500", "500.00"},
	}
	for _, tc := range tests {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := Round(d).StringFixed(2); got != tc.want {
			t.Errorf("Round(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(500.00).StringFixed(2); got != "500.00" {
		t.Fatalf("FromFloat(500.00) = %s", got)
	}
	if got := FromFloat(12.345).StringFixed(2); got != "12.35" {
		t.Fatalf("FromFloat(12.345) = %s", got)
	}
}
