package ledgermock

import (
	"context"
	"time"

	domain "meewoo-banking/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn                  func(ctx context.Context, e *domain.Entry) error
	ListByCustomerIDBetweenFn func(ctx context.Context, customerID string, from, to time.Time) ([]domain.Entry, error)
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}
func (m *Repo) ListByCustomerIDBetween(ctx context.Context, customerID string, from, to time.Time) ([]domain.Entry, error) {
	if m.ListByCustomerIDBetweenFn != nil {
		return m.ListByCustomerIDBetweenFn(ctx, customerID, from, to)
	}
	return nil, context.Canceled
}
