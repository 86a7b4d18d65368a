package statement

import (
	"bytes"
	"context"
	"testing"
	"time"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/ledger"
	"meewoo-banking/internal/testutil/customermock"
	"meewoo-banking/internal/testutil/ledgermock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func testCustomer() *customer.Customer {
	return &customer.Customer{
		CustomerID:    "CUST-AAAA1111",
		FirstName:     "Asha",
		LastName:      "Rao",
		AccountNumber: "3333355000001",
		IFSCode:       "MEWO3355",
		BranchCode:    "3355",
		IsApproved:    true,
	}
}

func TestUsecase_Render(t *testing.T) {
	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, id string) (*customer.Customer, error) {
			if id == "CUST-AAAA1111" {
				return testCustomer(), nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	t.Run("renders a pdf with the full-day range", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		entries := &ledgermock.Repo{
			ListByCustomerIDBetweenFn: func(ctx context.Context, id string, from, to time.Time) ([]ledger.Entry, error) {
				gotFrom, gotTo = from, to
				return []ledger.Entry{{
					CustomerID:  id,
					Amount:      decimal.NewFromFloat(250.50),
					Type:        ledger.TypeTransferOut,
					Description: "Transferred 250.50 to CUST-RECV0001 (Acc: 3333355000002)",
					OccurredAt:  time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
				}}, nil
			},
		}
		uc := NewUsecase(customers, entries)

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		st, err := uc.Render(context.Background(), "CUST-AAAA1111", start, end)
		if err != nil {
			t.Fatalf("render: %v", err)
		}

		if st.Filename != "transaction_history_CUST-AAAA1111_2026-08-01_to_2026-08-31.pdf" {
			t.Fatalf("filename = %q", st.Filename)
		}
		if !bytes.HasPrefix(st.PDF, []byte("%PDF")) {
			t.Fatalf("output does not start with %%PDF: %q", st.PDF[:8])
		}
		if gotFrom != start {
			t.Fatalf("from = %v", gotFrom)
		}
		// end of day, inclusive
		if gotTo.Hour() != 23 || gotTo.Minute() != 59 || gotTo.Second() != 59 {
			t.Fatalf("to = %v, want end of day", gotTo)
		}
	})

	t.Run("empty range still renders", func(t *testing.T) {
		entries := &ledgermock.Repo{
			ListByCustomerIDBetweenFn: func(ctx context.Context, id string, from, to time.Time) ([]ledger.Entry, error) {
				return nil, nil
			},
		}
		uc := NewUsecase(customers, entries)

		st, err := uc.Render(context.Background(), "CUST-AAAA1111",
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if len(st.PDF) == 0 {
			t.Fatal("empty pdf")
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := NewUsecase(customers, &ledgermock.Repo{})
		_, err := uc.Render(context.Background(), "CUST-AAAA1111",
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		if errs.KindOf(err) != errs.KindValidation {
			t.Fatalf("kind = %v, want validation", errs.KindOf(err))
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc := NewUsecase(customers, &ledgermock.Repo{})
		_, err := uc.Render(context.Background(), "CUST-GONE0001",
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
		if errs.KindOf(err) != errs.KindNotFound {
			t.Fatalf("kind = %v, want not found", errs.KindOf(err))
		}
	})
}
