package customermock

import (
	"context"

	domain "meewoo-banking/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Customer) error
	SaveFn                     func(ctx context.Context, c *domain.Customer) error
	DeleteFn                   func(ctx context.Context, c *domain.Customer) error
	GetByCustomerIDFn          func(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByCustomerIDForUpdateFn func(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByMobileNumberFn        func(ctx context.Context, mobile string) (*domain.Customer, error)
	GetByEmailFn               func(ctx context.Context, email string) (*domain.Customer, error)
	ListPendingApprovalFn      func(ctx context.Context) ([]domain.Customer, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, c *domain.Customer) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDForUpdateFn != nil {
		return m.GetByCustomerIDForUpdateFn(ctx, customerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByMobileNumber(ctx context.Context, mobile string) (*domain.Customer, error) {
	if m.GetByMobileNumberFn != nil {
		return m.GetByMobileNumberFn(ctx, mobile)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) ListPendingApproval(ctx context.Context) ([]domain.Customer, error) {
	if m.ListPendingApprovalFn != nil {
		return m.ListPendingApprovalFn(ctx)
	}
	return nil, context.Canceled
}
