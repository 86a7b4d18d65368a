package fd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/fd"
	"meewoo-banking/internal/domain/ledger"
	"meewoo-banking/internal/domain/uow"
	"meewoo-banking/pkg/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var minPrincipal = decimal.NewFromFloat(500.00)

const maxRejectionReasonLen = 500

type Usecase struct {
	fds       fd.Repository
	customers customer.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(fds fd.Repository, customers customer.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{fds: fds, customers: customers, uow: tx}
}

// Apply records a PENDING fixed-deposit application. No money moves until an
// admin approves it.
func (u *Usecase) Apply(ctx context.Context, customerID string, in ApplyInput) (*CustomerView, error) {
	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("customer not found")
		}
		return nil, errs.Internal(err, "loading customer")
	}

	if !in.PrincipalAmount.IsPositive() {
		return nil, errs.Validationf("principal amount must be a positive value")
	}
	if in.PrincipalAmount.LessThan(minPrincipal) {
		return nil, errs.Validationf("minimum fixed deposit amount is 500.00")
	}
	if in.TermInMonths < 1 || in.TermInMonths > 120 {
		return nil, errs.Validationf("fixed deposit term must be between 1 and 120 months")
	}

	f := &fd.FixedDeposit{
		CustomerID:          c.CustomerID,
		PrincipalAmount:     money.Round(in.PrincipalAmount),
		TermInMonths:        in.TermInMonths,
		InterestRate:        RateForTerm(in.TermInMonths),
		Status:              fd.StatusPending,
		ApplicationDate:     time.Now().UTC(),
		SourceAccountNumber: c.AccountNumber,
	}
	if err := u.fds.Create(ctx, f); err != nil {
		return nil, errs.Internal(err, "saving fd application")
	}
	log.Printf("fd apply: customer=%s fd=%d principal=%s term=%d rate=%s",
		c.CustomerID, f.ID, f.PrincipalAmount.StringFixed(2), f.TermInMonths, f.InterestRate.StringFixed(2))
	return customerView(f), nil
}

// Approve activates a PENDING fixed deposit: it debits the funding customer,
// writes the FD_ACCOUNT_DEBIT ledger leg and fixes start/maturity figures.
// Status guard, balance guard, debit and status write share one transaction.
func (u *Usecase) Approve(ctx context.Context, fdID uint64, adminID string) (*AdminView, error) {
	var out *AdminView
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		f, err := r.FixedDeposits.GetByIDForUpdate(ctx, fdID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("fixed deposit application not found")
			}
			return errs.Internal(err, "loading fd")
		}
		if f.Status != fd.StatusPending {
			return errs.Conflictf("only fixed deposits with PENDING status can be approved (current: %s)", f.Status)
		}

		c, err := r.Customers.GetByCustomerIDForUpdate(ctx, f.CustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("customer %s for fd %d not found", f.CustomerID, fdID)
			}
			return errs.Internal(err, "loading funding customer")
		}
		if c.Balance.LessThan(f.PrincipalAmount) {
			return errs.Conflictf("insufficient balance to fund the fixed deposit of %s", f.PrincipalAmount.StringFixed(2))
		}

		c.Balance = money.Round(c.Balance.Sub(f.PrincipalAmount))
		if err := r.Customers.Save(ctx, c); err != nil {
			return errs.Internal(err, "debiting funding customer")
		}

		now := time.Now().UTC()
		entry := &ledger.Entry{
			CustomerID:          c.CustomerID,
			Amount:              f.PrincipalAmount,
			Type:                ledger.TypeFDAccountDebit,
			Description:         fmt.Sprintf("Debit for activation of Fixed Deposit (ID: %d)", f.ID),
			OccurredAt:          now,
			SenderAccountNumber: c.AccountNumber,
			BranchCode:          c.BranchCode,
			IFSCCode:            c.IFSCode,
			SenderMobile:        c.MobileNumber,
		}
		if err := r.Ledger.Append(ctx, entry); err != nil {
			return errs.Internal(err, "recording fd debit leg")
		}

		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		maturity := start.AddDate(0, f.TermInMonths, 0)
		f.StartDate = &start
		f.MaturityDate = &maturity
		f.MaturityAmount = decimal.NullDecimal{
			Decimal: MaturityAmount(f.PrincipalAmount, f.InterestRate, f.TermInMonths),
			Valid:   true,
		}
		f.Status = fd.StatusActive
		f.ActionDate = &now
		f.ActionByAdminID = adminID
		f.RejectionReason = ""
		if err := r.FixedDeposits.Save(ctx, f); err != nil {
			return errs.Internal(err, "saving approved fd")
		}

		out = adminView(f, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("fd approve: admin=%s fd=%d customer=%s outcome=active", adminID, fdID, out.Customer.CustomerID)
	return out, nil
}

// Reject marks a PENDING fixed deposit REJECTED. No balance effect.
func (u *Usecase) Reject(ctx context.Context, fdID uint64, adminID, reason string) (*AdminView, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.Validationf("rejection reason cannot be empty")
	}
	if len(reason) > maxRejectionReasonLen {
		return nil, errs.Validationf("rejection reason is too long (max %d characters)", maxRejectionReasonLen)
	}

	var out *AdminView
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		f, err := r.FixedDeposits.GetByIDForUpdate(ctx, fdID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("fixed deposit application not found")
			}
			return errs.Internal(err, "loading fd")
		}
		if f.Status != fd.StatusPending {
			return errs.Conflictf("only fixed deposits with PENDING status can be rejected (current: %s)", f.Status)
		}

		now := time.Now().UTC()
		f.Status = fd.StatusRejected
		f.ActionDate = &now
		f.ActionByAdminID = adminID
		f.RejectionReason = reason
		if err := r.FixedDeposits.Save(ctx, f); err != nil {
			return errs.Internal(err, "saving rejected fd")
		}

		c, err := r.Customers.GetByCustomerID(ctx, f.CustomerID)
		if err != nil {
			c = nil // view falls back to the bare customer id
		}
		out = adminView(f, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("fd reject: admin=%s fd=%d outcome=rejected", adminID, fdID)
	return out, nil
}

// ListMine returns the caller's own fixed deposits, newest application first.
func (u *Usecase) ListMine(ctx context.Context, customerID string) ([]*CustomerView, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("customer not found")
		}
		return nil, errs.Internal(err, "loading customer")
	}
	fds, err := u.fds.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Internal(err, "listing fds")
	}
	out := make([]*CustomerView, 0, len(fds))
	for i := range fds {
		out = append(out, customerView(&fds[i]))
	}
	return out, nil
}

// ListPending returns PENDING applications for the admin queue, oldest first.
func (u *Usecase) ListPending(ctx context.Context) ([]*AdminView, error) {
	fds, err := u.fds.ListByStatus(ctx, fd.StatusPending)
	if err != nil {
		return nil, errs.Internal(err, "listing pending fds")
	}
	out := make([]*AdminView, 0, len(fds))
	for i := range fds {
		c, err := u.customers.GetByCustomerID(ctx, fds[i].CustomerID)
		if err != nil {
			c = nil
		}
		out = append(out, adminView(&fds[i], c))
	}
	return out, nil
}
