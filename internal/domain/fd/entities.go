package fd

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"
	// MATURED and CLOSED are reached by external/manual processing only;
	// no code path in this system produces them.
	StatusMatured Status = "MATURED"
	StatusClosed  Status = "CLOSED"
)

type FixedDeposit struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"id"`
	CustomerID      string          `gorm:"size:16;index:idx_fds_customer" json:"customer_id"`
	PrincipalAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal_amount"`
	TermInMonths    int             `gorm:"not null" json:"term_in_months"`
	// Annual simple-interest rate in percent, fixed from the tier table at
	// application time.
	InterestRate        decimal.Decimal     `gorm:"type:decimal(6,2)" json:"interest_rate"`
	Status              Status              `gorm:"size:16;index:idx_fds_status" json:"status"`
	ApplicationDate     time.Time           `gorm:"not null" json:"application_date"`
	StartDate           *time.Time          `gorm:"type:date" json:"start_date,omitempty"`
	MaturityDate        *time.Time          `gorm:"type:date" json:"maturity_date,omitempty"`
	MaturityAmount      decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"maturity_amount,omitempty"`
	SourceAccountNumber string              `gorm:"size:20" json:"source_account_number"`
	ActionDate          *time.Time          `json:"action_date,omitempty"`
	ActionByAdminID     string              `gorm:"size:16" json:"action_by_admin_id,omitempty"`
	RejectionReason     string              `gorm:"size:500" json:"rejection_reason,omitempty"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"-"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime" json:"-"`
}

func (FixedDeposit) TableName() string { return "fixed_deposits" }
