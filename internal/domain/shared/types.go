package shared

// TransactionKind defines the direction of a ledger transaction
type TransactionKind string

const (
	TransactionKindCredit TransactionKind = "CREDIT"
	TransactionKindDebit  TransactionKind = "DEBIT"
)

// Valid reports whether the kind is one of the known values.
func (k TransactionKind) Valid() bool {
	return k == TransactionKindCredit || k == TransactionKindDebit
}

// WithdrawalMethod defines how a withdrawal is performed. Counter and ATM
// withdrawals are treated identically by the policy rules.
type WithdrawalMethod string

const (
	WithdrawalMethodATM      WithdrawalMethod = "ATM"
	WithdrawalMethodTransfer WithdrawalMethod = "TRANSFER"
)

// AccountType identifies the policy tier an account belongs to. The set is
// closed: validation dispatches through a policy table keyed by this tag.
type AccountType string

const (
	AccountTypeForeign           AccountType = "FOREIGN"
	AccountTypeRestricted        AccountType = "RESTRICTED"
	AccountTypeRestrictedCompany AccountType = "RESTRICTED_COMPANY"
)

// Valid reports whether the account type is one of the known tiers.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeForeign, AccountTypeRestricted, AccountTypeRestrictedCompany:
		return true
	}
	return false
}
