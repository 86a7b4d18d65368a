package fd

import (
	"time"

	"github.com/shopspring/decimal"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/fd"
)

type ApplyInput struct {
	PrincipalAmount decimal.Decimal
	TermInMonths    int
}

// CustomerView is what the FD owner sees: no admin or third-party identity.
type CustomerView struct {
	ID                  uint64           `json:"id"`
	PrincipalAmount     decimal.Decimal  `json:"principal_amount"`
	InterestRate        decimal.Decimal  `json:"interest_rate"`
	TermInMonths        int              `json:"term_in_months"`
	StartDate           *time.Time       `json:"start_date,omitempty"`
	MaturityDate        *time.Time       `json:"maturity_date,omitempty"`
	MaturityAmount      *decimal.Decimal `json:"maturity_amount,omitempty"`
	Status              fd.Status        `json:"status"`
	ApplicationDate     time.Time        `json:"application_date"`
	SourceAccountNumber string           `json:"source_account_number"`
	RejectionReason     string           `json:"rejection_reason,omitempty"`
	ActionDate          *time.Time       `json:"action_date,omitempty"`
}

// CustomerInfo is the slice of customer identity an admin sees on an FD.
type CustomerInfo struct {
	CustomerID   string `json:"customer_id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
}

// AdminView embeds applicant identity and contact on top of the FD fields.
type AdminView struct {
	ID                  uint64           `json:"id"`
	Customer            CustomerInfo     `json:"customer"`
	PrincipalAmount     decimal.Decimal  `json:"principal_amount"`
	TermInMonths        int              `json:"term_in_months"`
	InterestRate        decimal.Decimal  `json:"interest_rate"`
	ApplicationDate     time.Time        `json:"application_date"`
	Status              fd.Status        `json:"status"`
	SourceAccountNumber string           `json:"source_account_number"`
	StartDate           *time.Time       `json:"start_date,omitempty"`
	MaturityDate        *time.Time       `json:"maturity_date,omitempty"`
	MaturityAmount      *decimal.Decimal `json:"maturity_amount,omitempty"`
	RejectionReason     string           `json:"rejection_reason,omitempty"`
}

func customerView(f *fd.FixedDeposit) *CustomerView {
	v := &CustomerView{
		ID:                  f.ID,
		PrincipalAmount:     f.PrincipalAmount,
		InterestRate:        f.InterestRate,
		TermInMonths:        f.TermInMonths,
		StartDate:           f.StartDate,
		MaturityDate:        f.MaturityDate,
		Status:              f.Status,
		ApplicationDate:     f.ApplicationDate,
		SourceAccountNumber: f.SourceAccountNumber,
		RejectionReason:     f.RejectionReason,
		ActionDate:          f.ActionDate,
	}
	if f.MaturityAmount.Valid {
		m := f.MaturityAmount.Decimal
		v.MaturityAmount = &m
	}
	return v
}

func adminView(f *fd.FixedDeposit, c *customer.Customer) *AdminView {
	v := &AdminView{
		ID:                  f.ID,
		PrincipalAmount:     f.PrincipalAmount,
		TermInMonths:        f.TermInMonths,
		InterestRate:        f.InterestRate,
		ApplicationDate:     f.ApplicationDate,
		Status:              f.Status,
		SourceAccountNumber: f.SourceAccountNumber,
		StartDate:           f.StartDate,
		MaturityDate:        f.MaturityDate,
		RejectionReason:     f.RejectionReason,
	}
	if f.MaturityAmount.Valid {
		m := f.MaturityAmount.Decimal
		v.MaturityAmount = &m
	}
	if c != nil {
		v.Customer = CustomerInfo{
			CustomerID:   c.CustomerID,
			Name:         c.FullName(),
			MobileNumber: c.MobileNumber,
			Email:        c.Email,
		}
	} else {
		v.Customer = CustomerInfo{CustomerID: f.CustomerID}
	}
	return v
}
