// Package money centralizes the two-decimal, half-up rounding every balance
// and ledger amount in the bank uses.
package money

import "github.com/shopspring/decimal"

// Round rounds to two decimal places, half away from zero (half-up for the
// non-negative amounts this system deals in).
func Round(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// FromFloat converts a float amount and rounds it to cents.
func FromFloat(f float64) decimal.Decimal { return Round(decimal.NewFromFloat(f)) }
