package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	// GetByCustomerIDForUpdate locks the row for the enclosing transaction.
	GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*Customer, error)
	GetByMobileNumber(ctx context.Context, mobile string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	ListPendingApproval(ctx context.Context) ([]Customer, error)
}
