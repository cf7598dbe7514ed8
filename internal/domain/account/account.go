package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/domain/shared"
)

// Account is a stateless view of one account, reconstructed from the ledger
// at the moment of use. Balance and WithdrawnToday are derived aggregates:
// the ledger's transaction log is the single source of truth, and nothing in
// this type is ever written back.
type Account struct {
	ID             uuid.UUID
	Type           shared.AccountType
	OpenedOn       shared.Date
	Balance        decimal.Decimal
	WithdrawnToday decimal.Decimal
}

// Open validates an opening deposit against the tier policy and returns the
// new account together with the initial credit transaction, if any. The
// opening amount may be zero for tiers without an opening floor.
func Open(accountType shared.AccountType, initialDeposit decimal.Decimal, openedOn shared.Date) (Account, *Transaction, error) {
	policy, err := PolicyFor(accountType)
	if err != nil {
		return Account{}, nil, err
	}
	if initialDeposit.IsNegative() || initialDeposit.LessThan(policy.MinimumBalance) {
		return Account{}, nil, ErrOpenAccountPolicy
	}

	acc := Account{
		ID:       uuid.New(),
		Type:     accountType,
		OpenedOn: openedOn,
	}
	if !initialDeposit.IsPositive() {
		return acc, nil, nil
	}
	tx, err := NewTransaction(acc.ID, shared.TransactionKindCredit, initialDeposit, openedOn)
	if err != nil {
		return Account{}, nil, err
	}
	return acc, &tx, nil
}

// Policy returns the tier policy for this account. The tag is trusted here:
// accounts are only ever constructed with a known tier.
func (a Account) Policy() Policy {
	return policies[a.Type]
}

// Deposit validates and produces a credit transaction. For tiers with an
// opening floor, the first deposit (current balance zero) must reach the
// minimum balance; that check replaces the generic deposit path entirely.
func (a Account) Deposit(amount decimal.Decimal, occurringOn shared.Date) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	policy := a.Policy()
	if policy.RequiresOpeningFloor && a.Balance.IsZero() && amount.LessThan(policy.MinimumBalance) {
		return Transaction{}, ErrOpenAccountPolicy
	}
	return NewTransaction(a.ID, shared.TransactionKindCredit, amount, occurringOn)
}

// Withdraw validates and produces a debit transaction.
func (a Account) Withdraw(amount decimal.Decimal, method shared.WithdrawalMethod, occurringOn shared.Date) (Transaction, error) {
	if err := a.CanWithdraw(amount, method, occurringOn); err != nil {
		return Transaction{}, err
	}
	return NewTransaction(a.ID, shared.TransactionKindDebit, amount, occurringOn)
}

// CanWithdraw runs the tier's withdrawal rules in their fixed order:
// the base insufficient-funds rule always first, then the date-gated ATM and
// daily-limit rules. A withdrawal that is both over-balance and over-limit
// therefore reports insufficient funds.
func (a Account) CanWithdraw(amount decimal.Decimal, method shared.WithdrawalMethod, occurringOn shared.Date) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	policy := a.Policy()

	// Landing exactly on the minimum is legal; the violation is strict.
	if a.Balance.Sub(amount).LessThan(policy.MinimumBalance) {
		return ErrInsufficientFunds
	}

	if policy.RestrictedOn(occurringOn) {
		if method == shared.WithdrawalMethodATM {
			return ErrATMWithdrawalNotAllowed
		}
		// Reaching the cap exactly is legal; the violation is strict.
		if policy.HasDailyLimit && a.WithdrawnToday.Add(amount).GreaterThan(policy.MaxDailyWithdrawal) {
			return ErrDailyWithdrawalLimit
		}
	}
	return nil
}

// Close validates closing the account and, when a balance remains, produces
// the terminal full-balance debit. The debit goes through the same
// withdrawal rules as any other (as a non-ATM withdrawal), so a restricted
// account whose balance exceeds the remaining daily allowance cannot be
// closed that day. Company accounts can never be closed.
func (a Account) Close(occurringOn shared.Date) (*Transaction, error) {
	if !a.Policy().AllowsClose {
		return nil, ErrClosingCompanyAccount
	}
	if !a.Balance.IsPositive() {
		return nil, nil
	}
	tx, err := a.Withdraw(a.Balance, shared.WithdrawalMethodTransfer, occurringOn)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
