package statement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/ledger"

	"gorm.io/gorm"
)

// Statement is a rendered PDF plus the filename to serve it under.
type Statement struct {
	Filename string
	PDF      []byte
}

type Usecase struct {
	customers customer.Repository
	ledger    ledger.Repository
}

func NewUsecase(customers customer.Repository, entries ledger.Repository) *Usecase {
	return &Usecase{customers: customers, ledger: entries}
}

// Render produces the transaction history PDF for [start, end], both dates
// inclusive. Reads only; no transaction needed.
func (u *Usecase) Render(ctx context.Context, customerID string, start, end time.Time) (*Statement, error) {
	if start.After(end) {
		return nil, errs.Validationf("start date must not be after end date")
	}

	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("customer not found")
		}
		return nil, errs.Internal(err, "loading customer")
	}

	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	entries, err := u.ledger.ListByCustomerIDBetween(ctx, customerID, from, to)
	if err != nil {
		return nil, errs.Internal(err, "listing ledger entries")
	}

	pdf, err := renderPDF(c, entries, from, to)
	if err != nil {
		return nil, errs.Internal(err, "rendering statement pdf")
	}

	filename := fmt.Sprintf("transaction_history_%s_%s_to_%s.pdf",
		c.CustomerID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	log.Printf("statement render: customer=%s from=%s to=%s entries=%d",
		c.CustomerID, from.Format("2006-01-02"), to.Format("2006-01-02"), len(entries))
	return &Statement{Filename: filename, PDF: pdf}, nil
}
