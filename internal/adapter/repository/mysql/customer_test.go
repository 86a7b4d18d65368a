package mysql

import (
	"context"
	"errors"
	"testing"

	customerDomain "meewoo-banking/internal/domain/customer"
	fdDomain "meewoo-banking/internal/domain/fd"
	ledgerDomain "meewoo-banking/internal/domain/ledger"
	loanDomain "meewoo-banking/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the tables these
// tests touch. The domain models carry no MySQL-only column types, so they
// migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&customerDomain.Customer{},
		&ledgerDomain.Entry{},
		&fdDomain.FixedDeposit{},
		&loanDomain.Application{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeCustomer(customerID, mobile, email string) *customerDomain.Customer {
	return &customerDomain.Customer{
		CustomerID:    customerID,
		FirstName:     "Asha",
		LastName:      "Rao",
		MobileNumber:  mobile,
		Email:         email,
		AccountNumber: "3333355000001",
		IFSCode:       "MEWO3355",
		BranchCode:    "3355",
		Balance:       decimal.NewFromFloat(500.00),
	}
}

func TestCustomerRepository_CreateAndLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer("CUST-AAAA1111", "9876543210", "asha@example.com")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := repo.GetByCustomerID(ctx, "CUST-AAAA1111")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.MobileNumber != "9876543210" {
		t.Fatalf("mobile = %s", byID.MobileNumber)
	}
	if byID.Balance.StringFixed(2) != "500.00" {
		t.Fatalf("balance round-trip = %s", byID.Balance.StringFixed(2))
	}

	if _, err := repo.GetByMobileNumber(ctx, "9876543210"); err != nil {
		t.Fatalf("get by mobile: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "asha@example.com"); err != nil {
		t.Fatalf("get by email: %v", err)
	}

	_, err = repo.GetByCustomerID(ctx, "CUST-GONE0001")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestCustomerRepository_SaveMutatesBalance(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer("CUST-AAAA1111", "9876543210", "asha@example.com")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	c.Balance = decimal.NewFromFloat(123.45)
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByCustomerID(ctx, "CUST-AAAA1111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Balance.StringFixed(2) != "123.45" {
		t.Fatalf("balance = %s", got.Balance.StringFixed(2))
	}
}

func TestCustomerRepository_ListPendingApproval(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	first := makeCustomer("CUST-PEND0001", "9000000001", "p1@example.com")
	second := makeCustomer("CUST-PEND0002", "9000000002", "p2@example.com")
	approved := makeCustomer("CUST-APPR0001", "9000000003", "a@example.com")
	approved.IsApproved = true
	admin := makeCustomer("CUST-ADMIN001", "9000000004", "adm@example.com")
	admin.IsAdmin = true

	for _, c := range []*customerDomain.Customer{first, second, approved, admin} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", c.CustomerID, err)
		}
	}

	got, err := repo.ListPendingApproval(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (admins and approved excluded)", len(got))
	}
	if got[0].CustomerID != "CUST-PEND0001" || got[1].CustomerID != "CUST-PEND0002" {
		t.Fatalf("order = %s, %s", got[0].CustomerID, got[1].CustomerID)
	}
}

func TestCustomerRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer("CUST-AAAA1111", "9876543210", "asha@example.com")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := repo.GetByCustomerID(ctx, "CUST-AAAA1111")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record not found", err)
	}
}
