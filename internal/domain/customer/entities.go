package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	CustomerID    string          `gorm:"size:16;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	FirstName     string          `gorm:"size:64" json:"first_name"`
	LastName      string          `gorm:"size:64" json:"last_name"`
	FatherName    string          `gorm:"size:64" json:"father_name,omitempty"`
	Address       string          `gorm:"type:text" json:"address,omitempty"`
	Pincode       string          `gorm:"size:10" json:"pincode,omitempty"`
	DateOfBirth   *time.Time      `gorm:"type:date" json:"date_of_birth,omitempty"`
	MobileNumber  string          `gorm:"size:15;uniqueIndex:ux_customers_mobile" json:"mobile_number"`
	Email         string          `gorm:"size:128;uniqueIndex:ux_customers_email" json:"email"`
	PasswordHash  string          `gorm:"size:128" json:"-"`
	AccountNumber string          `gorm:"size:20;index:idx_customers_account_number" json:"account_number"`
	IFSCode       string          `gorm:"size:12" json:"ifs_code"`
	BranchCode    string          `gorm:"size:8" json:"branch_code"`
	Balance       decimal.Decimal `gorm:"type:decimal(18,2)" json:"balance"`
	IsAdmin       bool            `gorm:"not null;default:false" json:"is_admin"`
	IsApproved    bool            `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }

// Enabled reports login eligibility: approved users and admins only.
func (c *Customer) Enabled() bool { return c.IsApproved || c.IsAdmin }

func (c *Customer) FullName() string { return c.FirstName + " " + c.LastName }
