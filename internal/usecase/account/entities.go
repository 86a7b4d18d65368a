package account

import "github.com/shopspring/decimal"

type TransferInput struct {
	Amount             decimal.Decimal
	ReceiverCustomerID string
	ReceiverMobileNo   string
}

type TransferResult struct {
	SenderCustomerID   string          `json:"sender_customer_id"`
	ReceiverCustomerID string          `json:"receiver_customer_id"`
	Amount             decimal.Decimal `json:"amount"`
	SenderBalance      decimal.Decimal `json:"sender_balance"`
}

// TellerResult is returned from employee deposit/withdraw operations.
type TellerResult struct {
	CustomerID    string          `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	NewBalance    decimal.Decimal `json:"new_balance"`
}

type BalanceResult struct {
	CustomerID    string          `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}
