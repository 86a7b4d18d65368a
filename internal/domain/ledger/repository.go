package ledger

import (
	"context"
	"time"
)

// Repository is append-only: entries are never updated or deleted.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// ListByCustomerIDBetween returns entries in [from, to], newest first.
	ListByCustomerIDBetween(ctx context.Context, customerID string, from, to time.Time) ([]Entry, error)
}
