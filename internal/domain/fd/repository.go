package fd

import "context"

type Repository interface {
	Create(ctx context.Context, f *FixedDeposit) error
	Save(ctx context.Context, f *FixedDeposit) error
	GetByID(ctx context.Context, id uint64) (*FixedDeposit, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*FixedDeposit, error)
	// ListByCustomerID returns the customer's FDs, newest application first.
	ListByCustomerID(ctx context.Context, customerID string) ([]FixedDeposit, error)
	// ListByStatus returns FDs in the given status, oldest application first.
	ListByStatus(ctx context.Context, status Status) ([]FixedDeposit, error)
}
