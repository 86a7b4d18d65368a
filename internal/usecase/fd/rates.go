package fd

import (
	"meewoo-banking/pkg/money"

	"github.com/shopspring/decimal"
)

// Annual simple-interest rates in percent, tiered by term.
var (
	rateTerm1To6   = decimal.NewFromFloat(5.00)
	rateTerm7To12  = decimal.NewFromFloat(5.75)
	rateTerm13To24 = decimal.NewFromFloat(6.25)
	rateTerm25To60 = decimal.NewFromFloat(6.75)
	rateTermOver60 = decimal.NewFromFloat(7.00)
)

// RateForTerm fixes the interest rate at application time from the tier table.
func RateForTerm(termInMonths int) decimal.Decimal {
	switch {
	case termInMonths > 60:
		return rateTermOver60
	case termInMonths >= 25:
		return rateTerm25To60
	case termInMonths >= 13:
		return rateTerm13To24
	case termInMonths >= 7:
		return rateTerm7To12
	default:
		return rateTerm1To6
	}
}

// MaturityAmount computes principal * (1 + rate/100 * term/12), simple
// interest rounded half-up to cents.
func MaturityAmount(principal, annualRatePercent decimal.Decimal, termInMonths int) decimal.Decimal {
	interest := principal.
		Mul(annualRatePercent).
		Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromInt(int64(termInMonths))).
		Div(decimal.NewFromInt(12))
	return money.Round(principal.Add(interest))
}
