package uow

import (
	"context"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/employee"
	"meewoo-banking/internal/domain/fd"
	"meewoo-banking/internal/domain/hiring"
	"meewoo-banking/internal/domain/ledger"
	"meewoo-banking/internal/domain/loan"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Customers       customer.Repository
	Employees       employee.Repository
	Ledger          ledger.Repository
	FixedDeposits   fd.Repository
	Loans           loan.Repository
	JobApplications hiring.Repository
}

// UnitOfWork runs fn atomically: every repository call inside fn commits or
// rolls back together. Money-moving operations and approval transitions must
// go through it.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
