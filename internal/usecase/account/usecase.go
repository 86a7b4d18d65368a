package account

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/domain/ledger"
	"meewoo-banking/internal/domain/uow"
	"meewoo-banking/pkg/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	customers customer.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(customers customer.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{customers: customers, uow: tx}
}

// Transfer moves money between two customers. The read-validate-mutate-log
// sequence runs in one transaction with both rows locked, so two concurrent
// transfers cannot pass the balance check against a stale balance. Rows are
// locked in customer-ID order to avoid lock cycles between opposite-direction
// transfers.
func (u *Usecase) Transfer(ctx context.Context, senderCustomerID string, in TransferInput) (*TransferResult, error) {
	if !in.Amount.IsPositive() {
		return nil, errs.Validationf("amount must be positive")
	}

	var out *TransferResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var sender, receiver *customer.Customer
		var receiverLookupErr error

		lockOrder := []string{senderCustomerID, in.ReceiverCustomerID}
		if lockOrder[1] < lockOrder[0] {
			lockOrder[0], lockOrder[1] = lockOrder[1], lockOrder[0]
		}
		for _, cid := range lockOrder {
			if cid == in.ReceiverCustomerID && cid == senderCustomerID && sender != nil {
				continue // self-transfer: one row, surfaced below in check order
			}
			c, err := r.Customers.GetByCustomerIDForUpdate(ctx, cid)
			switch {
			case err == nil:
				if cid == senderCustomerID {
					sender = c
				} else {
					receiver = c
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if cid == senderCustomerID {
					return errs.NotFoundf("sender account not found")
				}
				// Deferred: balance and self-transfer checks come first.
				receiverLookupErr = errs.NotFoundf("receiver account not found")
			default:
				return errs.Internal(err, "loading accounts for transfer")
			}
		}

		// Precondition order per the transfer contract; first failure wins.
		if sender.Balance.LessThan(in.Amount) {
			return errs.Conflictf("insufficient balance")
		}
		if senderCustomerID == in.ReceiverCustomerID {
			return errs.Validationf("cannot transfer to yourself")
		}
		if receiverLookupErr != nil {
			return receiverLookupErr
		}
		if receiver.MobileNumber != in.ReceiverMobileNo {
			return errs.Validationf("receiver details mismatch")
		}

		sender.Balance = money.Round(sender.Balance.Sub(in.Amount))
		receiver.Balance = money.Round(receiver.Balance.Add(in.Amount))
		if err := r.Customers.Save(ctx, sender); err != nil {
			return errs.Internal(err, "saving sender balance")
		}
		if err := r.Customers.Save(ctx, receiver); err != nil {
			return errs.Internal(err, "saving receiver balance")
		}

		now := time.Now().UTC()
		debit := &ledger.Entry{
			CustomerID:  sender.CustomerID,
			Amount:      in.Amount,
			Type:        ledger.TypeTransferOut,
			Description: fmt.Sprintf("Transferred %s to %s (Acc: %s)", in.Amount.StringFixed(2), receiver.CustomerID, receiver.AccountNumber),
			OccurredAt:  now,

			SenderAccountNumber:    sender.AccountNumber,
			RecipientAccountNumber: receiver.AccountNumber,
			BranchCode:             sender.BranchCode,
			IFSCCode:               sender.IFSCode,
			SenderMobile:           sender.MobileNumber,
			RecipientMobile:        receiver.MobileNumber,
		}
		credit := &ledger.Entry{
			CustomerID:  receiver.CustomerID,
			Amount:      in.Amount,
			Type:        ledger.TypeTransferIn,
			Description: fmt.Sprintf("Received %s from %s (Acc: %s)", in.Amount.StringFixed(2), sender.CustomerID, sender.AccountNumber),
			OccurredAt:  now,

			SenderAccountNumber:    sender.AccountNumber,
			RecipientAccountNumber: receiver.AccountNumber,
			BranchCode:             receiver.BranchCode,
			IFSCCode:               receiver.IFSCode,
			SenderMobile:           sender.MobileNumber,
			RecipientMobile:        receiver.MobileNumber,
		}
		if err := r.Ledger.Append(ctx, debit); err != nil {
			return errs.Internal(err, "recording transfer debit leg")
		}
		if err := r.Ledger.Append(ctx, credit); err != nil {
			return errs.Internal(err, "recording transfer credit leg")
		}

		out = &TransferResult{
			SenderCustomerID:   sender.CustomerID,
			ReceiverCustomerID: receiver.CustomerID,
			Amount:             in.Amount,
			SenderBalance:      sender.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("transfer: %s -> %s amount=%s", out.SenderCustomerID, out.ReceiverCustomerID, out.Amount.StringFixed(2))
	return out, nil
}

// Deposit credits a customer's account on behalf of a teller. Amounts have no
// upper bound.
func (u *Usecase) Deposit(ctx context.Context, targetCustomerID string, amount decimal.Decimal, actingEmployeeID string) (*TellerResult, error) {
	return u.tellerMutate(ctx, targetCustomerID, amount, actingEmployeeID, false)
}

// Withdraw debits a customer's account on behalf of a teller; the balance may
// never go negative.
func (u *Usecase) Withdraw(ctx context.Context, targetCustomerID string, amount decimal.Decimal, actingEmployeeID string) (*TellerResult, error) {
	return u.tellerMutate(ctx, targetCustomerID, amount, actingEmployeeID, true)
}

func (u *Usecase) tellerMutate(ctx context.Context, targetCustomerID string, amount decimal.Decimal, actingEmployeeID string, withdraw bool) (*TellerResult, error) {
	if !amount.IsPositive() {
		return nil, errs.Validationf("amount must be positive")
	}

	var out *TellerResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		target, err := r.Customers.GetByCustomerIDForUpdate(ctx, targetCustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("target customer account not found")
			}
			return errs.Internal(err, "loading target account")
		}
		if !target.Enabled() {
			return errs.Conflictf("target customer account is not active")
		}

		entry := &ledger.Entry{
			CustomerID:      target.CustomerID,
			Amount:          amount,
			OccurredAt:      time.Now().UTC(),
			BranchCode:      target.BranchCode,
			IFSCCode:        target.IFSCode,
			RecipientMobile: target.MobileNumber,
		}
		if withdraw {
			if target.Balance.LessThan(amount) {
				return errs.Conflictf("insufficient balance")
			}
			target.Balance = money.Round(target.Balance.Sub(amount))
			entry.Type = ledger.TypeWithdrawalByEmployee
			entry.Description = fmt.Sprintf("Withdrawal of %s performed by Employee %s", amount.StringFixed(2), actingEmployeeID)
			entry.SenderAccountNumber = target.AccountNumber
			entry.SenderMobile = target.MobileNumber
			entry.RecipientMobile = ""
		} else {
			target.Balance = money.Round(target.Balance.Add(amount))
			entry.Type = ledger.TypeDepositByEmployee
			entry.Description = fmt.Sprintf("Deposit of %s performed by Employee %s", amount.StringFixed(2), actingEmployeeID)
			entry.RecipientAccountNumber = target.AccountNumber
		}

		if err := r.Customers.Save(ctx, target); err != nil {
			return errs.Internal(err, "saving target balance")
		}
		if err := r.Ledger.Append(ctx, entry); err != nil {
			return errs.Internal(err, "recording teller entry")
		}

		out = &TellerResult{
			CustomerID:    target.CustomerID,
			AccountNumber: target.AccountNumber,
			Amount:        amount,
			NewBalance:    target.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	op := "deposit"
	if withdraw {
		op = "withdraw"
	}
	log.Printf("teller %s: employee=%s customer=%s amount=%s outcome=ok", op, actingEmployeeID, out.CustomerID, amount.StringFixed(2))
	return out, nil
}

// CheckBalance is the customer's own read-only balance view.
func (u *Usecase) CheckBalance(ctx context.Context, customerID string) (*BalanceResult, error) {
	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("customer not found")
		}
		return nil, errs.Internal(err, "loading customer")
	}
	return &BalanceResult{CustomerID: c.CustomerID, AccountNumber: c.AccountNumber, Balance: c.Balance}, nil
}

// EmployeeCheckBalance is the teller-side balance view. The target must be an
// enabled account, matching the deposit/withdraw rule.
func (u *Usecase) EmployeeCheckBalance(ctx context.Context, targetCustomerID, actingEmployeeID string) (*BalanceResult, error) {
	c, err := u.customers.GetByCustomerID(ctx, targetCustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("target customer account not found")
		}
		return nil, errs.Internal(err, "loading target account")
	}
	if !c.Enabled() {
		return nil, errs.Conflictf("target customer account is not active")
	}
	log.Printf("teller check-balance: employee=%s customer=%s", actingEmployeeID, c.CustomerID)
	return &BalanceResult{CustomerID: c.CustomerID, AccountNumber: c.AccountNumber, Balance: c.Balance}, nil
}
