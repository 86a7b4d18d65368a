package loan

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	// ListByCustomerID returns the customer's applications, newest first.
	ListByCustomerID(ctx context.Context, customerID string) ([]Application, error)
	// ListActionable returns PENDING and UNDER_REVIEW applications, oldest first.
	ListActionable(ctx context.Context) ([]Application, error)
}
