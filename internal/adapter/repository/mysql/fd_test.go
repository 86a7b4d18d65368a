package mysql

import (
	"context"
	"testing"
	"time"

	fdDomain "meewoo-banking/internal/domain/fd"

	"github.com/shopspring/decimal"
)

func makeFD(customerID string, applied time.Time, status fdDomain.Status) *fdDomain.FixedDeposit {
	return &fdDomain.FixedDeposit{
		CustomerID:      customerID,
		PrincipalAmount: decimal.NewFromInt(1000),
		TermInMonths:    10,
		InterestRate:    decimal.NewFromFloat(5.75),
		Status:          status,
		ApplicationDate: applied,
	}
}

func TestFixedDepositRepository_Listings(t *testing.T) {
	db := openTestDB(t)
	repo := NewFixedDepositRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := makeFD("CUST-AAAA1111", base, fdDomain.StatusPending)
	newer := makeFD("CUST-AAAA1111", base.Add(72*time.Hour), fdDomain.StatusPending)
	otherCustomer := makeFD("CUST-OTHER001", base.Add(time.Hour), fdDomain.StatusPending)
	active := makeFD("CUST-AAAA1111", base.Add(time.Hour), fdDomain.StatusActive)

	for _, f := range []*fdDomain.FixedDeposit{older, newer, otherCustomer, active} {
		if err := repo.Create(ctx, f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mine, err := repo.ListByCustomerID(ctx, "CUST-AAAA1111")
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("len = %d, want 3", len(mine))
	}
	// newest application first
	if !mine[0].ApplicationDate.Equal(newer.ApplicationDate) {
		t.Fatalf("order: first = %v", mine[0].ApplicationDate)
	}

	pending, err := repo.ListByStatus(ctx, fdDomain.StatusPending)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("len = %d, want 3", len(pending))
	}
	// oldest first for the review queue
	if !pending[0].ApplicationDate.Equal(older.ApplicationDate) {
		t.Fatalf("queue order: first = %v", pending[0].ApplicationDate)
	}
}

func TestFixedDepositRepository_SaveRoundTripsNullables(t *testing.T) {
	db := openTestDB(t)
	repo := NewFixedDepositRepository(db)
	ctx := context.Background()

	f := makeFD("CUST-AAAA1111", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), fdDomain.StatusPending)
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}

	start := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	maturity := start.AddDate(0, 10, 0)
	f.Status = fdDomain.StatusActive
	f.StartDate = &start
	f.MaturityDate = &maturity
	f.MaturityAmount = decimal.NullDecimal{Decimal: decimal.NewFromFloat(1047.92), Valid: true}
	if err := repo.Save(ctx, f); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != fdDomain.StatusActive {
		t.Fatalf("status = %s", got.Status)
	}
	if !got.MaturityAmount.Valid || got.MaturityAmount.Decimal.StringFixed(2) != "1047.92" {
		t.Fatalf("maturity amount = %+v", got.MaturityAmount)
	}
	if got.StartDate == nil || got.MaturityDate == nil {
		t.Fatal("dates lost in round trip")
	}
}
