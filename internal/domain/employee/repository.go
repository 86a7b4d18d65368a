package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Save(ctx context.Context, e *Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByMobileNumber(ctx context.Context, mobile string) (*Employee, error)
}
