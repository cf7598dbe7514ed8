package account

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount indicates a non-positive transaction amount. This is a
// caller contract violation rather than a business rule: no legitimate
// request path produces it.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrPolicy is the root of the business-rule error family. Every policy
// violation below wraps it, so callers can match the whole family with
// errors.Is(err, account.ErrPolicy) while still distinguishing individual
// rules by their own sentinel.
var ErrPolicy = errors.New("account policy violation")

var (
	// ErrInsufficientFunds indicates a withdrawal or closing that would
	// push the balance below the tier's minimum.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds in account", ErrPolicy)

	// ErrDailyWithdrawalLimit indicates a withdrawal that would exceed the
	// tier's daily cap on or after the restriction date.
	ErrDailyWithdrawalLimit = fmt.Errorf("%w: daily withdrawal limit exceeded", ErrPolicy)

	// ErrATMWithdrawalNotAllowed indicates a counter/ATM withdrawal
	// attempted on or after the restriction date.
	ErrATMWithdrawalNotAllowed = fmt.Errorf("%w: ATM withdrawals are not allowed past the restriction date", ErrPolicy)

	// ErrClosingCompanyAccount indicates an attempt to close a company
	// account, which is categorically forbidden.
	ErrClosingCompanyAccount = fmt.Errorf("%w: company accounts cannot be closed", ErrPolicy)

	// ErrOpenAccountPolicy indicates an opening (or first) deposit below
	// the tier's required floor, or a negative opening amount.
	ErrOpenAccountPolicy = fmt.Errorf("%w: deposit below the minimum required for this account type", ErrPolicy)
)

// ErrUnknownAccountType indicates an account type outside the fixed tier set.
type ErrUnknownAccountType struct {
	Type string
}

func (e ErrUnknownAccountType) Error() string {
	return "unknown account type: " + e.Type
}
