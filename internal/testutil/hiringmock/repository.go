package hiringmock

import (
	"context"

	domain "meewoo-banking/internal/domain/hiring"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, a *domain.JobApplication) error
	SaveFn             func(ctx context.Context, a *domain.JobApplication) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.JobApplication, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.JobApplication, error)
	ListAllFn          func(ctx context.Context) ([]domain.JobApplication, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.JobApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, a *domain.JobApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.JobApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.JobApplication, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAll(ctx context.Context) ([]domain.JobApplication, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, context.Canceled
}
