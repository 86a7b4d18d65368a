package loan

import "github.com/shopspring/decimal"

type ApplyInput struct {
	LoanType         string
	RequestedAmount  decimal.Decimal
	TermInMonths     int
	Purpose          string
	MonthlyIncome    *decimal.Decimal
	EmploymentStatus string
}

type ApproveInput struct {
	ApprovedAmount decimal.Decimal
	InterestRate   decimal.Decimal
}
