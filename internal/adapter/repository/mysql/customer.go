package mysql

import (
	"context"

	customerDomain "meewoo-banking/internal/domain/customer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).
		First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByMobileNumber(ctx context.Context, mobile string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("mobile_number = ?", mobile).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) ListPendingApproval(ctx context.Context) ([]customerDomain.Customer, error) {
	var out []customerDomain.Customer
	res := r.db.WithContext(ctx).
		Where("is_approved = ? AND is_admin = ?", false, false).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
