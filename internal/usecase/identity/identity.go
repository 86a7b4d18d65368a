package identity

import (
	"context"
	"errors"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/employee"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/pkg/password"

	"gorm.io/gorm"
)

// Kind says which population a principal belongs to.
type Kind string

const (
	KindCustomer Kind = "CUSTOMER"
	KindAdmin    Kind = "ADMIN"
	KindEmployee Kind = "EMPLOYEE"
)

// Principal is the authenticated caller, independent of how the account is
// stored.
type Principal struct {
	Kind        Kind
	ID          string
	DisplayName string
}

func (p Principal) IsAdmin() bool { return p.Kind == KindAdmin }
func (p Principal) IsStaff() bool { return p.Kind == KindAdmin || p.Kind == KindEmployee }

// Directory resolves login identifiers against both account stores. The
// identifier itself never decides the population: each store is asked in
// turn.
type Directory struct {
	customers customer.Repository
	employees employee.Repository
}

func NewDirectory(customers customer.Repository, employees employee.Repository) *Directory {
	return &Directory{customers: customers, employees: employees}
}

type resolved struct {
	principal Principal
	hash      string
	enabled   bool
}

// Authenticate verifies credentials and returns the caller's principal.
// Disabled and unapproved accounts fail before the password is checked so a
// pending customer gets a clear message.
func (d *Directory) Authenticate(ctx context.Context, identifier, plaintext string) (Principal, error) {
	r, err := d.resolve(ctx, identifier)
	if err != nil {
		return Principal{}, err
	}
	if !r.enabled {
		return Principal{}, errs.Authf("account is pending admin approval or disabled")
	}
	if !password.Verify(r.hash, plaintext) {
		return Principal{}, errs.Authf("invalid credentials")
	}
	return r.principal, nil
}

func (d *Directory) resolve(ctx context.Context, identifier string) (*resolved, error) {
	if c, err := d.customers.GetByCustomerID(ctx, identifier); err == nil {
		return customerResolved(c), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internal(err, "looking up customer id")
	}
	if c, err := d.customers.GetByMobileNumber(ctx, identifier); err == nil {
		return customerResolved(c), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internal(err, "looking up customer mobile")
	}
	if e, err := d.employees.GetByEmployeeID(ctx, identifier); err == nil {
		return employeeResolved(e), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internal(err, "looking up employee id")
	}
	if e, err := d.employees.GetByEmail(ctx, identifier); err == nil {
		return employeeResolved(e), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internal(err, "looking up employee email")
	}
	return nil, errs.Authf("invalid credentials")
}

func customerResolved(c *customer.Customer) *resolved {
	kind := KindCustomer
	if c.IsAdmin {
		kind = KindAdmin
	}
	return &resolved{
		principal: Principal{Kind: kind, ID: c.CustomerID, DisplayName: c.FullName()},
		hash:      c.PasswordHash,
		enabled:   c.Enabled(),
	}
}

func employeeResolved(e *employee.Employee) *resolved {
	return &resolved{
		principal: Principal{Kind: KindEmployee, ID: e.EmployeeID, DisplayName: e.FullName()},
		hash:      e.PasswordHash,
		enabled:   e.Enabled(),
	}
}
