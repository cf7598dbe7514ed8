package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/domain/shared"
)

// Transaction is an immutable record of one credit or debit against one
// account. Transactions are pure data: they are created by a successful
// account operation and never mutated or deleted afterwards.
type Transaction struct {
	ID         uuid.UUID              `json:"id"`
	AccountID  uuid.UUID              `json:"account_id"`
	Kind       shared.TransactionKind `json:"kind"`
	Amount     decimal.Decimal        `json:"amount"`
	OccurredOn shared.Date            `json:"occurred_on"`
}

// NewTransaction creates a transaction. The amount must be strictly
// positive; a zero or negative amount is a caller bug, not a business error.
func NewTransaction(accountID uuid.UUID, kind shared.TransactionKind, amount decimal.Decimal, occurredOn shared.Date) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	return Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		Kind:       kind,
		Amount:     amount,
		OccurredOn: occurredOn,
	}, nil
}

// Signed returns the transaction's contribution to a balance fold:
// +Amount for credits, -Amount for debits.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == shared.TransactionKindDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
