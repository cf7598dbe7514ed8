package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/domain/shared"
)

// Policy holds the constants one account tier layers over the base behavior.
// These are per-tier constants, not per-account state: every account of a
// tier shares the same policy value.
type Policy struct {
	// MinimumBalance is the floor the balance may never drop below.
	MinimumBalance decimal.Decimal

	// MaxDailyWithdrawal caps the sum of same-day debits once the
	// restriction date is reached. Only meaningful when HasDailyLimit.
	MaxDailyWithdrawal decimal.Decimal
	HasDailyLimit      bool

	// RestrictionDate is the day the ATM and daily-limit rules activate.
	// Zero means the tier is never date-restricted.
	RestrictionDate shared.Date

	// AllowsClose is false for tiers that can never be closed.
	AllowsClose bool

	// RequiresOpeningFloor gates the account's first deposit (current
	// balance zero) on MinimumBalance.
	RequiresOpeningFloor bool
}

// RestrictedOn reports whether the date-gated rules apply on the given day.
func (p Policy) RestrictedOn(on shared.Date) bool {
	return !p.RestrictionDate.IsZero() && on.OnOrAfter(p.RestrictionDate)
}

var (
	restrictionDate    = shared.NewDate(2020, time.April, 1)
	maxDailyWithdrawal = decimal.NewFromInt(1000)
	companyMinimum     = decimal.NewFromInt(5000)
)

// policies is the closed tier table. Dispatch goes through this map, never
// through type switches scattered over the codebase.
var policies = map[shared.AccountType]Policy{
	shared.AccountTypeForeign: {
		AllowsClose: true,
	},
	shared.AccountTypeRestricted: {
		MaxDailyWithdrawal: maxDailyWithdrawal,
		HasDailyLimit:      true,
		RestrictionDate:    restrictionDate,
		AllowsClose:        true,
	},
	shared.AccountTypeRestrictedCompany: {
		MinimumBalance:       companyMinimum,
		MaxDailyWithdrawal:   maxDailyWithdrawal,
		HasDailyLimit:        true,
		RestrictionDate:      restrictionDate,
		RequiresOpeningFloor: true,
	},
}

// PolicyFor returns the policy for an account tier.
func PolicyFor(t shared.AccountType) (Policy, error) {
	p, ok := policies[t]
	if !ok {
		return Policy{}, ErrUnknownAccountType{Type: string(t)}
	}
	return p, nil
}
