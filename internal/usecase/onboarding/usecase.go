package onboarding

import (
	"context"
	"errors"
	"log"
	"strings"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/uow"
	"meewoo-banking/pkg/id"
	"meewoo-banking/pkg/money"
	"meewoo-banking/pkg/password"

	"gorm.io/gorm"
)

// BankIdentity carries the institution constants stamped onto every new
// account.
type BankIdentity struct {
	BankCode   string
	BranchCode string
	IFSCPrefix string
}

var openingBalance = money.FromFloat(500.00)

const customerIDSuffixLen = 8

type Usecase struct {
	customers customer.Repository
	uow       uow.UnitOfWork
	bank      BankIdentity
}

func NewUsecase(customers customer.Repository, tx uow.UnitOfWork, bank BankIdentity) *Usecase {
	return &Usecase{customers: customers, uow: tx, bank: bank}
}

// Register creates a customer in the unapproved state. The account number,
// IFSC and opening balance are assigned here; login stays blocked until an
// admin approves the registration.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if strings.TrimSpace(in.Password) == "" {
		return nil, errs.Validationf("password is required")
	}

	// lookup must use the stored (lower-cased) form or the duplicate check
	// misses case variants
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := u.customers.GetByMobileNumber(ctx, in.MobileNumber); err == nil {
		return nil, errs.Conflictf("mobile number is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internal(err, "checking mobile number")
	}
	if _, err := u.customers.GetByEmail(ctx, email); err == nil {
		return nil, errs.Conflictf("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internal(err, "checking email")
	}

	customerID, err := u.freshCustomerID(ctx)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, errs.Internal(err, "hashing password")
	}

	c := &customer.Customer{
		CustomerID:    customerID,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		FatherName:    strings.TrimSpace(in.FatherName),
		MobileNumber:  in.MobileNumber,
		Email:         email,
		PasswordHash:  hash,
		Address:       strings.TrimSpace(in.Address),
		Pincode:       strings.TrimSpace(in.Pincode),
		DateOfBirth:   in.DateOfBirth,
		AccountNumber: u.bank.BankCode + u.bank.BranchCode + id.AccountSerial(),
		IFSCode:       u.bank.IFSCPrefix + u.bank.BranchCode,
		BranchCode:    u.bank.BranchCode,
		Balance:       openingBalance,
		IsAdmin:       false,
		IsApproved:    false,
	}
	if err := u.customers.Create(ctx, c); err != nil {
		return nil, errs.Internal(err, "saving customer")
	}
	log.Printf("onboarding register: customer=%s account=%s", c.CustomerID, c.AccountNumber)
	return &RegisterResult{
		CustomerID:    c.CustomerID,
		FullName:      c.FullName(),
		AccountNumber: c.AccountNumber,
		IFSCode:       c.IFSCode,
		BranchCode:    c.BranchCode,
		Balance:       c.Balance,
		IsApproved:    c.IsApproved,
	}, nil
}

// ListPending returns unapproved, non-admin registrations for the admin queue.
func (u *Usecase) ListPending(ctx context.Context) ([]PendingRegistration, error) {
	customers, err := u.customers.ListPendingApproval(ctx)
	if err != nil {
		return nil, errs.Internal(err, "listing pending registrations")
	}
	out := make([]PendingRegistration, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		out = append(out, PendingRegistration{
			CustomerID:    c.CustomerID,
			FullName:      c.FullName(),
			MobileNumber:  c.MobileNumber,
			Email:         c.Email,
			AccountNumber: c.AccountNumber,
		})
	}
	return out, nil
}

// ApproveRegistration flips the approval flag. Approving twice is a conflict,
// so a replayed request cannot mask an operator mistake.
func (u *Usecase) ApproveRegistration(ctx context.Context, customerID, adminID string) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerIDForUpdate(ctx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("customer not found")
			}
			return errs.Internal(err, "loading customer")
		}
		if c.IsApproved {
			return errs.Conflictf("customer %s is already approved", customerID)
		}
		c.IsApproved = true
		if err := r.Customers.Save(ctx, c); err != nil {
			return errs.Internal(err, "saving approved customer")
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("onboarding approve: admin=%s customer=%s outcome=approved", adminID, customerID)
	return nil
}

// RejectRegistration removes an unapproved registration entirely. The
// customer can register again from scratch.
func (u *Usecase) RejectRegistration(ctx context.Context, customerID, adminID string) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerIDForUpdate(ctx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("customer not found")
			}
			return errs.Internal(err, "loading customer")
		}
		if c.IsApproved {
			return errs.Conflictf("customer %s is already approved and cannot be rejected", customerID)
		}
		if err := r.Customers.Delete(ctx, c); err != nil {
			return errs.Internal(err, "deleting rejected customer")
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("onboarding reject: admin=%s customer=%s outcome=rejected", adminID, customerID)
	return nil
}

func (u *Usecase) freshCustomerID(ctx context.Context) (string, error) {
	for range [5]struct{}{} {
		candidate := id.Prefixed("CUST-", customerIDSuffixLen)
		_, err := u.customers.GetByCustomerID(ctx, candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errs.Internal(err, "checking customer id")
		}
	}
	return "", errs.Internal(errors.New("customer id space exhausted"), "generating customer id")
}
