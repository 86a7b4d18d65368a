package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	TypeTransferOut          EntryType = "TRANSFER_OUT"
	TypeTransferIn           EntryType = "TRANSFER_IN"
	TypeDepositByEmployee    EntryType = "DEPOSIT_BY_EMP"
	TypeWithdrawalByEmployee EntryType = "WITHDRAWAL_BY_EMP"
	TypeFDAccountDebit       EntryType = "FD_ACCOUNT_DEBIT"
)

// Credit reports whether the entry adds money to the customer's account.
func (t EntryType) Credit() bool {
	return t == TypeTransferIn || t == TypeDepositByEmployee
}

// Entry is one immutable record of a single money movement. Amount is the
// transaction amount, never a running balance; a running balance, if wanted,
// is replayed from entries.
type Entry struct {
	ID                     uint64          `gorm:"primaryKey;column:id" json:"-"`
	CustomerID             string          `gorm:"size:16;index:idx_ledger_customer_occurred" json:"customer_id"`
	Amount                 decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Type                   EntryType       `gorm:"size:32" json:"type"`
	Description            string          `gorm:"type:text" json:"description"`
	OccurredAt             time.Time       `gorm:"index:idx_ledger_customer_occurred" json:"occurred_at"`
	SenderAccountNumber    string          `gorm:"size:20" json:"sender_account_number,omitempty"`
	RecipientAccountNumber string          `gorm:"size:20" json:"recipient_account_number,omitempty"`
	BranchCode             string          `gorm:"size:8" json:"branch_code,omitempty"`
	IFSCCode               string          `gorm:"size:12" json:"ifsc_code,omitempty"`
	SenderMobile           string          `gorm:"size:15" json:"sender_mobile,omitempty"`
	RecipientMobile        string          `gorm:"size:15" json:"recipient_mobile,omitempty"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"-"`
}

func (Entry) TableName() string { return "ledger_entries" }
