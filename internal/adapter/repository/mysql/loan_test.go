package mysql

import (
	"context"
	"testing"
	"time"

	loanDomain "meewoo-banking/internal/domain/loan"

	"github.com/shopspring/decimal"
)

func makeApplication(customerID string, applied time.Time, status loanDomain.Status) *loanDomain.Application {
	return &loanDomain.Application{
		CustomerID:      customerID,
		LoanType:        "PERSONAL",
		RequestedAmount: decimal.NewFromInt(50000),
		TermInMonths:    24,
		Purpose:         "home renovation",
		Status:          status,
		ApplicationDate: applied,
	}
}

func TestLoanRepository_ListActionable(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	pending := makeApplication("CUST-AAAA1111", base.Add(48*time.Hour), loanDomain.StatusPending)
	underReview := makeApplication("CUST-BBBB2222", base, loanDomain.StatusUnderReview)
	approved := makeApplication("CUST-CCCC3333", base, loanDomain.StatusApproved)
	rejected := makeApplication("CUST-DDDD4444", base, loanDomain.StatusRejected)

	for _, a := range []*loanDomain.Application{pending, underReview, approved, rejected} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.ListActionable(ctx)
	if err != nil {
		t.Fatalf("list actionable: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (terminal statuses excluded)", len(got))
	}
	// oldest first
	if got[0].Status != loanDomain.StatusUnderReview || got[1].Status != loanDomain.StatusPending {
		t.Fatalf("order = %s, %s", got[0].Status, got[1].Status)
	}
}

func TestLoanRepository_ListByCustomerID_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := makeApplication("CUST-AAAA1111", base, loanDomain.StatusRejected)
	newer := makeApplication("CUST-AAAA1111", base.Add(48*time.Hour), loanDomain.StatusPending)
	other := makeApplication("CUST-OTHER001", base, loanDomain.StatusPending)

	for _, a := range []*loanDomain.Application{older, newer, other} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.ListByCustomerID(ctx, "CUST-AAAA1111")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].ApplicationDate.Equal(newer.ApplicationDate) {
		t.Fatalf("order: first = %v", got[0].ApplicationDate)
	}
}
