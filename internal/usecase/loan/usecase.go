package loan

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/loan"
	"meewoo-banking/internal/domain/uow"
	"meewoo-banking/pkg/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	minRequestedAmount = decimal.NewFromInt(1000)
	minInterestRate    = decimal.NewFromFloat(0.1)
	// Approvals above requested * overApprovalFactor are logged, not blocked.
	overApprovalFactor = decimal.NewFromFloat(1.1)
)

type Usecase struct {
	loans     loan.Repository
	customers customer.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, customers customer.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, customers: customers, uow: tx}
}

// Apply records a PENDING loan application. Disbursement never happens in
// this system.
func (u *Usecase) Apply(ctx context.Context, customerID string, in ApplyInput) (*loan.Application, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("customer not found")
		}
		return nil, errs.Internal(err, "loading customer")
	}

	loanType := strings.ToUpper(strings.TrimSpace(in.LoanType))
	if loanType == "" {
		return nil, errs.Validationf("loan type is required")
	}
	if in.RequestedAmount.LessThan(minRequestedAmount) {
		return nil, errs.Validationf("minimum loan amount is 1000")
	}
	if in.TermInMonths < 6 || in.TermInMonths > 120 {
		return nil, errs.Validationf("loan term must be between 6 and 120 months")
	}
	purpose := strings.TrimSpace(in.Purpose)
	if purpose == "" {
		return nil, errs.Validationf("loan purpose is required")
	}
	if in.MonthlyIncome != nil && in.MonthlyIncome.IsNegative() {
		return nil, errs.Validationf("monthly income cannot be negative")
	}

	a := &loan.Application{
		CustomerID:       customerID,
		LoanType:         loanType,
		RequestedAmount:  money.Round(in.RequestedAmount),
		TermInMonths:     in.TermInMonths,
		Purpose:          purpose,
		EmploymentStatus: in.EmploymentStatus,
		Status:           loan.StatusPending,
		ApplicationDate:  time.Now().UTC(),
	}
	if in.MonthlyIncome != nil {
		a.MonthlyIncome = decimal.NullDecimal{Decimal: *in.MonthlyIncome, Valid: true}
	}
	if err := u.loans.Create(ctx, a); err != nil {
		return nil, errs.Internal(err, "saving loan application")
	}
	log.Printf("loan apply: customer=%s loan=%d type=%s amount=%s term=%d",
		customerID, a.ID, a.LoanType, a.RequestedAmount.StringFixed(2), a.TermInMonths)
	return a, nil
}

// Approve moves an actionable application to APPROVED. No money movement;
// disbursement is out of scope.
func (u *Usecase) Approve(ctx context.Context, loanID uint64, adminID string, in ApproveInput) (*loan.Application, error) {
	if !in.ApprovedAmount.IsPositive() {
		return nil, errs.Validationf("approved amount must be positive")
	}
	if !in.InterestRate.GreaterThan(minInterestRate) {
		return nil, errs.Validationf("interest rate must be greater than 0.1%%")
	}

	var out *loan.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("loan application not found")
			}
			return errs.Internal(err, "loading loan application")
		}
		if !a.Status.Actionable() {
			return errs.Conflictf("loan application cannot be approved from its current status: %s", a.Status)
		}

		if in.ApprovedAmount.GreaterThan(a.RequestedAmount.Mul(overApprovalFactor)) {
			// Soft policy: flag, do not block.
			log.Printf("loan approve: admin=%s loan=%d approved %s significantly over requested %s",
				adminID, loanID, in.ApprovedAmount.StringFixed(2), a.RequestedAmount.StringFixed(2))
		}

		now := time.Now().UTC()
		a.Status = loan.StatusApproved
		a.ApprovedAmount = decimal.NullDecimal{Decimal: money.Round(in.ApprovedAmount), Valid: true}
		a.InterestRate = decimal.NullDecimal{Decimal: in.InterestRate, Valid: true}
		a.ApprovalDate = &now
		a.ApprovedByAdminID = adminID
		a.RejectionReason = ""
		if err := r.Loans.Save(ctx, a); err != nil {
			return errs.Internal(err, "saving approved loan")
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("loan approve: admin=%s loan=%d amount=%s rate=%s outcome=approved",
		adminID, loanID, out.ApprovedAmount.Decimal.StringFixed(2), out.InterestRate.Decimal.StringFixed(2))
	return out, nil
}

// Reject moves an actionable application to REJECTED and clears any approval
// fields.
func (u *Usecase) Reject(ctx context.Context, loanID uint64, adminID, reason string) (*loan.Application, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.Validationf("rejection reason cannot be empty")
	}

	var out *loan.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("loan application not found")
			}
			return errs.Internal(err, "loading loan application")
		}
		if !a.Status.Actionable() {
			return errs.Conflictf("loan application cannot be rejected from its current status: %s", a.Status)
		}

		a.Status = loan.StatusRejected
		a.ApprovedByAdminID = adminID
		a.RejectionReason = reason
		a.ApprovedAmount = decimal.NullDecimal{}
		a.InterestRate = decimal.NullDecimal{}
		a.ApprovalDate = nil
		if err := r.Loans.Save(ctx, a); err != nil {
			return errs.Internal(err, "saving rejected loan")
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("loan reject: admin=%s loan=%d outcome=rejected", adminID, loanID)
	return out, nil
}

// ListMine returns the caller's applications, newest first.
func (u *Usecase) ListMine(ctx context.Context, customerID string) ([]loan.Application, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("customer not found")
		}
		return nil, errs.Internal(err, "loading customer")
	}
	out, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Internal(err, "listing loans")
	}
	return out, nil
}

// ListActionable returns the admin queue: PENDING and UNDER_REVIEW, oldest
// first.
func (u *Usecase) ListActionable(ctx context.Context) ([]loan.Application, error) {
	out, err := u.loans.ListActionable(ctx)
	if err != nil {
		return nil, errs.Internal(err, "listing actionable loans")
	}
	return out, nil
}
