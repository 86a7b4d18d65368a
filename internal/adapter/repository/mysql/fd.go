package mysql

import (
	"context"

	fdDomain "meewoo-banking/internal/domain/fd"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FixedDepositRepository struct{ db *gorm.DB }

func NewFixedDepositRepository(db *gorm.DB) *FixedDepositRepository {
	return &FixedDepositRepository{db: db}
}

func (r *FixedDepositRepository) Create(ctx context.Context, f *fdDomain.FixedDeposit) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FixedDepositRepository) Save(ctx context.Context, f *fdDomain.FixedDeposit) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FixedDepositRepository) GetByID(ctx context.Context, id uint64) (*fdDomain.FixedDeposit, error) {
	var out fdDomain.FixedDeposit
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *FixedDepositRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*fdDomain.FixedDeposit, error) {
	var out fdDomain.FixedDeposit
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *FixedDepositRepository) ListByCustomerID(ctx context.Context, customerID string) ([]fdDomain.FixedDeposit, error) {
	var out []fdDomain.FixedDeposit
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("application_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *FixedDepositRepository) ListByStatus(ctx context.Context, status fdDomain.Status) ([]fdDomain.FixedDeposit, error) {
	var out []fdDomain.FixedDeposit
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("application_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}
