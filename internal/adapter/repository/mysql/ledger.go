package mysql

import (
	"context"
	"time"

	ledgerDomain "meewoo-banking/internal/domain/ledger"

	"gorm.io/gorm"
)

// LedgerRepository only ever inserts and reads; there is no update or delete
// path for ledger entries.
type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Append(ctx context.Context, e *ledgerDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) ListByCustomerIDBetween(ctx context.Context, customerID string, from, to time.Time) ([]ledgerDomain.Entry, error) {
	var out []ledgerDomain.Entry
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND occurred_at BETWEEN ? AND ?", customerID, from, to).
		Order("occurred_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
