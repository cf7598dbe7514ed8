package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// AccountDetails is the read model for one account: identity plus the
// aggregates derived from the ledger at the time of the call.
type AccountDetails struct {
	ID       uuid.UUID
	Type     shared.AccountType
	OpenedOn shared.Date
	Balance  decimal.Decimal
}

// BankService defines the façade the core exposes outward. Every mutating
// operation takes an occurring-on date; the zero date means "the clock's
// current date". All dates are business dates, not wall time.
type BankService interface {
	// OpenAccount opens an account of the given tier with an opening
	// deposit (zero for none). Returns the new account's details and the
	// initial credit transaction, if any.
	// Returns account.ErrOpenAccountPolicy if the tier requires a larger
	// opening deposit or the amount is negative.
	OpenAccount(ctx context.Context, accountType shared.AccountType, initialDeposit decimal.Decimal, openedOn shared.Date) (AccountDetails, *account.Transaction, error)

	// Deposit credits the account.
	// Returns ledger.ErrAccountNotFound if the id is not in the live set.
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, occurringOn shared.Date) (account.Transaction, error)

	// Withdraw debits the account after running the tier's rules.
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, method shared.WithdrawalMethod, occurringOn shared.Date) (account.Transaction, error)

	// CloseAccount withdraws any remaining balance and removes the account
	// from the live set. The returned transaction is nil when the balance
	// was already zero.
	CloseAccount(ctx context.Context, accountID uuid.UUID, occurringOn shared.Date) (*account.Transaction, error)

	// AccountDetails returns one account's derived read model.
	AccountDetails(ctx context.Context, accountID uuid.UUID) (AccountDetails, error)

	// AllAccounts returns details of every live account in recording order.
	AllAccounts(ctx context.Context) ([]AccountDetails, error)

	// AllTransactions returns every transaction in recording order.
	AllTransactions(ctx context.Context) ([]account.Transaction, error)

	// AccountTransactions returns one account's transactions in recording
	// order. Unlike resolves, this also works for closed accounts, whose
	// history remains in the log.
	AccountTransactions(ctx context.Context, accountID uuid.UUID) ([]account.Transaction, error)

	// Transaction returns one transaction by id.
	Transaction(ctx context.Context, transactionID uuid.UUID) (account.Transaction, bool)

	// CurrentDate returns the simulated clock's date.
	CurrentDate() shared.Date

	// SetCurrentDate moves the simulated clock.
	SetCurrentDate(d shared.Date)
}
