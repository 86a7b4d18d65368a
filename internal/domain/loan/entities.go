package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	// DISBURSED and CLOSED are future states with no trigger in this system.
	StatusDisbursed Status = "DISBURSED"
	StatusClosed    Status = "CLOSED"
)

// Actionable reports whether an admin approve/reject transition is permitted
// from this status.
func (s Status) Actionable() bool {
	return s == StatusPending || s == StatusUnderReview
}

type Application struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"id"`
	CustomerID       string          `gorm:"size:16;index:idx_loans_customer" json:"customer_id"`
	LoanType         string          `gorm:"size:32" json:"loan_type"`
	RequestedAmount  decimal.Decimal `gorm:"type:decimal(18,2)" json:"requested_amount"`
	TermInMonths     int             `gorm:"not null" json:"term_in_months"`
	Purpose          string          `gorm:"type:text" json:"purpose"`
	MonthlyIncome    decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"monthly_income,omitempty"`
	EmploymentStatus string              `gorm:"size:32" json:"employment_status,omitempty"`
	Status           Status              `gorm:"size:16;index:idx_loans_status" json:"status"`
	ApplicationDate  time.Time           `gorm:"not null" json:"application_date"`
	ApprovedAmount   decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"approved_amount,omitempty"`
	InterestRate     decimal.NullDecimal `gorm:"type:decimal(6,2)" json:"interest_rate,omitempty"`
	ApprovalDate     *time.Time          `json:"approval_date,omitempty"`
	// Set on both approval and rejection: the admin who actioned it.
	ApprovedByAdminID string    `gorm:"size:16" json:"approved_by_admin_id,omitempty"`
	RejectionReason   string    `gorm:"size:500" json:"rejection_reason,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
