package employeemock

import (
	"context"

	domain "meewoo-banking/internal/domain/employee"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, e *domain.Employee) error
	SaveFn              func(ctx context.Context, e *domain.Employee) error
	GetByEmployeeIDFn   func(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetByEmailFn        func(ctx context.Context, email string) (*domain.Employee, error)
	GetByMobileNumberFn func(ctx context.Context, mobile string) (*domain.Employee, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, e *domain.Employee) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}
func (m *Repo) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if m.GetByEmployeeIDFn != nil {
		return m.GetByEmployeeIDFn(ctx, employeeID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByMobileNumber(ctx context.Context, mobile string) (*domain.Employee, error) {
	if m.GetByMobileNumberFn != nil {
		return m.GetByMobileNumberFn(ctx, mobile)
	}
	return nil, context.Canceled
}
