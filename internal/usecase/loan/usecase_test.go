package loan

import (
	"context"
	"testing"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/loan"
	"meewoo-banking/internal/domain/uow"
	"meewoo-banking/internal/testutil/customermock"
	"meewoo-banking/internal/testutil/loanmock"
	"meewoo-banking/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func knownCustomers() *customermock.Repo {
	return &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, id string) (*customer.Customer, error) {
			if id == "CUST-AAAA1111" {
				return &customer.Customer{CustomerID: id, IsApproved: true}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestUsecase_Apply(t *testing.T) {
	t.Run("happy path normalizes loan type", func(t *testing.T) {
		var created *loan.Application
		loans := &loanmock.Repo{
			CreateFn: func(ctx context.Context, a *loan.Application) error {
				created = a
				return nil
			},
		}
		uc := NewUsecase(loans, knownCustomers(), uowmock.New())

		income := decimal.NewFromInt(45000)
		got, err := uc.Apply(context.Background(), "CUST-AAAA1111", ApplyInput{
			LoanType:        "  personal ",
			RequestedAmount: decimal.NewFromInt(50000),
			TermInMonths:    24,
			Purpose:         "home renovation",
			MonthlyIncome:   &income,
		})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if created.LoanType != "PERSONAL" {
			t.Fatalf("loan type = %q, want PERSONAL", created.LoanType)
		}
		if created.Status != loan.StatusPending {
			t.Fatalf("status = %s", created.Status)
		}
		if !created.MonthlyIncome.Valid {
			t.Fatal("monthly income must be recorded")
		}
		if got.RequestedAmount.StringFixed(2) != "50000.00" {
			t.Fatalf("requested = %s", got.RequestedAmount.StringFixed(2))
		}
	})

	tests := []struct {
		name string
		in   ApplyInput
	}{
		{"amount below minimum", ApplyInput{LoanType: "PERSONAL", RequestedAmount: decimal.NewFromInt(999), TermInMonths: 24, Purpose: "x"}},
		{"term too short", ApplyInput{LoanType: "PERSONAL", RequestedAmount: decimal.NewFromInt(5000), TermInMonths: 5, Purpose: "x"}},
		{"term too long", ApplyInput{LoanType: "PERSONAL", RequestedAmount: decimal.NewFromInt(5000), TermInMonths: 121, Purpose: "x"}},
		{"blank purpose", ApplyInput{LoanType: "PERSONAL", RequestedAmount: decimal.NewFromInt(5000), TermInMonths: 24, Purpose: "   "}},
		{"blank loan type", ApplyInput{LoanType: "  ", RequestedAmount: decimal.NewFromInt(5000), TermInMonths: 24, Purpose: "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUsecase(&loanmock.Repo{}, knownCustomers(), uowmock.New())
			_, err := uc.Apply(context.Background(), "CUST-AAAA1111", tc.in)
			if errs.KindOf(err) != errs.KindValidation {
				t.Fatalf("kind = %v, want validation (%v)", errs.KindOf(err), err)
			}
		})
	}

	t.Run("negative monthly income", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{}, knownCustomers(), uowmock.New())
		bad := decimal.NewFromInt(-1)
		_, err := uc.Apply(context.Background(), "CUST-AAAA1111", ApplyInput{
			LoanType: "PERSONAL", RequestedAmount: decimal.NewFromInt(5000), TermInMonths: 24, Purpose: "x",
			MonthlyIncome: &bad,
		})
		if errs.KindOf(err) != errs.KindValidation {
			t.Fatalf("kind = %v, want validation", errs.KindOf(err))
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{}, knownCustomers(), uowmock.New())
		_, err := uc.Apply(context.Background(), "CUST-NOPE0000", ApplyInput{
			LoanType: "PERSONAL", RequestedAmount: decimal.NewFromInt(5000), TermInMonths: 24, Purpose: "x",
		})
		if errs.KindOf(err) != errs.KindNotFound {
			t.Fatalf("kind = %v, want not found", errs.KindOf(err))
		}
	})
}

func TestUsecase_Approve(t *testing.T) {
	newPending := func() *loan.Application {
		return &loan.Application{
			ID:              42,
			CustomerID:      "CUST-AAAA1111",
			LoanType:        "PERSONAL",
			RequestedAmount: decimal.NewFromInt(50000),
			TermInMonths:    24,
			Status:          loan.StatusPending,
			RejectionReason: "stale reason from a prior cycle",
		}
	}

	t.Run("happy path sets approval fields and clears rejection", func(t *testing.T) {
		var saved *loan.Application
		loans := &loanmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loan.Application, error) {
				return newPending(), nil
			},
			SaveFn: func(ctx context.Context, a *loan.Application) error {
				saved = a
				return nil
			},
		}
		tx := uowmock.Passthrough(uow.Repos{Loans: loans})
		uc := NewUsecase(loans, knownCustomers(), tx)

		got, err := uc.Approve(context.Background(), 42, "CUST-ADMIN001", ApproveInput{
			ApprovedAmount: decimal.NewFromInt(48000),
			InterestRate:   decimal.NewFromFloat(11.5),
		})
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		if saved.Status != loan.StatusApproved {
			t.Fatalf("status = %s", saved.Status)
		}
		if !saved.ApprovedAmount.Valid || saved.ApprovedAmount.Decimal.StringFixed(2) != "48000.00" {
			t.Fatalf("approved amount = %+v", saved.ApprovedAmount)
		}
		if saved.ApprovalDate == nil || saved.ApprovedByAdminID != "CUST-ADMIN001" {
			t.Fatalf("audit fields: %+v", saved)
		}
		if saved.RejectionReason != "" {
			t.Fatal("rejection reason must be cleared on approval")
		}
		if got.InterestRate.Decimal.StringFixed(2) != "11.50" {
			t.Fatalf("rate = %s", got.InterestRate.Decimal.StringFixed(2))
		}
	})

	t.Run("over-approval is allowed", func(t *testing.T) {
		loans := &loanmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loan.Application, error) {
				return newPending(), nil
			},
		}
		tx := uowmock.Passthrough(uow.Repos{Loans: loans})
		uc := NewUsecase(loans, knownCustomers(), tx)

		// 60000 > 1.1 * 50000; flagged in the audit log but not blocked.
		if _, err := uc.Approve(context.Background(), 42, "CUST-ADMIN001", ApproveInput{
			ApprovedAmount: decimal.NewFromInt(60000),
			InterestRate:   decimal.NewFromFloat(11.5),
		}); err != nil {
			t.Fatalf("approve: %v", err)
		}
	})

	t.Run("interest rate at the floor", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{}, knownCustomers(), uowmock.New())
		_, err := uc.Approve(context.Background(), 42, "CUST-ADMIN001", ApproveInput{
			ApprovedAmount: decimal.NewFromInt(48000),
			InterestRate:   decimal.NewFromFloat(0.1),
		})
		if errs.KindOf(err) != errs.KindValidation {
			t.Fatalf("kind = %v, want validation", errs.KindOf(err))
		}
	})

	t.Run("terminal status is a conflict", func(t *testing.T) {
		for _, status := range []loan.Status{loan.StatusApproved, loan.StatusRejected, loan.StatusDisbursed, loan.StatusClosed} {
			loans := &loanmock.Repo{
				GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loan.Application, error) {
					a := newPending()
					a.Status = status
					return a, nil
				},
			}
			tx := uowmock.Passthrough(uow.Repos{Loans: loans})
			uc := NewUsecase(loans, knownCustomers(), tx)

			_, err := uc.Approve(context.Background(), 42, "CUST-ADMIN001", ApproveInput{
				ApprovedAmount: decimal.NewFromInt(48000),
				InterestRate:   decimal.NewFromFloat(11.5),
			})
			if errs.KindOf(err) != errs.KindConflict {
				t.Fatalf("status %s: kind = %v, want conflict", status, errs.KindOf(err))
			}
		}
	})

	t.Run("under review is actionable", func(t *testing.T) {
		loans := &loanmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loan.Application, error) {
				a := newPending()
				a.Status = loan.StatusUnderReview
				return a, nil
			},
		}
		tx := uowmock.Passthrough(uow.Repos{Loans: loans})
		uc := NewUsecase(loans, knownCustomers(), tx)

		if _, err := uc.Approve(context.Background(), 42, "CUST-ADMIN001", ApproveInput{
			ApprovedAmount: decimal.NewFromInt(48000),
			InterestRate:   decimal.NewFromFloat(11.5),
		}); err != nil {
			t.Fatalf("approve: %v", err)
		}
	})
}

func TestUsecase_Reject(t *testing.T) {
	t.Run("clears approval fields", func(t *testing.T) {
		var saved *loan.Application
		loans := &loanmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loan.Application, error) {
				return &loan.Application{
					ID:             42,
					Status:         loan.StatusUnderReview,
					ApprovedAmount: decimal.NullDecimal{Decimal: decimal.NewFromInt(1), Valid: true},
				}, nil
			},
			SaveFn: func(ctx context.Context, a *loan.Application) error {
				saved = a
				return nil
			},
		}
		tx := uowmock.Passthrough(uow.Repos{Loans: loans})
		uc := NewUsecase(loans, knownCustomers(), tx)

		if _, err := uc.Reject(context.Background(), 42, "CUST-ADMIN001", "insufficient income"); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if saved.Status != loan.StatusRejected {
			t.Fatalf("status = %s", saved.Status)
		}
		if saved.ApprovedAmount.Valid || saved.InterestRate.Valid || saved.ApprovalDate != nil {
			t.Fatalf("approval fields must be cleared: %+v", saved)
		}
		if saved.RejectionReason != "insufficient income" {
			t.Fatalf("reason = %q", saved.RejectionReason)
		}
	})

	t.Run("empty reason", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{}, knownCustomers(), uowmock.New())
		_, err := uc.Reject(context.Background(), 42, "CUST-ADMIN001", "  ")
		if errs.KindOf(err) != errs.KindValidation {
			t.Fatalf("kind = %v, want validation", errs.KindOf(err))
		}
	})

	t.Run("missing application", func(t *testing.T) {
		loans := &loanmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loan.Application, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		tx := uowmock.Passthrough(uow.Repos{Loans: loans})
		uc := NewUsecase(loans, knownCustomers(), tx)

		_, err := uc.Reject(context.Background(), 42, "CUST-ADMIN001", "whatever")
		if errs.KindOf(err) != errs.KindNotFound {
			t.Fatalf("kind = %v, want not found", errs.KindOf(err))
		}
	})
}
