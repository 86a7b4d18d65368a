package fdmock

import (
	"context"

	domain "meewoo-banking/internal/domain/fd"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, f *domain.FixedDeposit) error
	SaveFn             func(ctx context.Context, f *domain.FixedDeposit) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.FixedDeposit, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.FixedDeposit, error)
	ListByCustomerIDFn func(ctx context.Context, customerID string) ([]domain.FixedDeposit, error)
	ListByStatusFn     func(ctx context.Context, status domain.Status) ([]domain.FixedDeposit, error)
}

func (m *Repo) Create(ctx context.Context, f *domain.FixedDeposit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, f *domain.FixedDeposit) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.FixedDeposit, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.FixedDeposit, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.FixedDeposit, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.FixedDeposit, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}
