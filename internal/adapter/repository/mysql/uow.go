package mysql

import (
	"context"

	"meewoo-banking/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Customers:       &CustomerRepository{db: tx},
			Employees:       &EmployeeRepository{db: tx},
			Ledger:          &LedgerRepository{db: tx},
			FixedDeposits:   &FixedDepositRepository{db: tx},
			Loans:           &LoanRepository{db: tx},
			JobApplications: &JobApplicationRepository{db: tx},
		}
		return fn(r)
	})
}
