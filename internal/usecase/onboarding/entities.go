package onboarding

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterInput struct {
	FirstName    string
	LastName     string
	FatherName   string
	MobileNumber string
	Email        string
	Password     string
	Address      string
	Pincode      string
	DateOfBirth  *time.Time
}

// RegisterResult carries everything a fresh customer needs to log in once an
// admin approves them.
type RegisterResult struct {
	CustomerID    string          `json:"customer_id"`
	FullName      string          `json:"full_name"`
	AccountNumber string          `json:"account_number"`
	IFSCode       string          `json:"ifsc_code"`
	BranchCode    string          `json:"branch_code"`
	Balance       decimal.Decimal `json:"balance"`
	IsApproved    bool            `json:"is_approved"`
}

// PendingRegistration is one row in the admin approval queue.
type PendingRegistration struct {
	CustomerID    string `json:"customer_id"`
	FullName      string `json:"full_name"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email"`
	AccountNumber string `json:"account_number"`
}
