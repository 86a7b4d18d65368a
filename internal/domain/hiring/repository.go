package hiring

import "context"

type Repository interface {
	Create(ctx context.Context, a *JobApplication) error
	Save(ctx context.Context, a *JobApplication) error
	GetByID(ctx context.Context, id uint64) (*JobApplication, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*JobApplication, error)
	// ListAll returns every application, newest first.
	ListAll(ctx context.Context) ([]JobApplication, error)
}
