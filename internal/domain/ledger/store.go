package ledger

import (
	"github.com/google/uuid"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// StoredAccount is the persisted shape of an account: identity, tier and
// opening date only. Balance and daily totals are never stored; they are
// derived from the transaction log on every read.
type StoredAccount struct {
	ID       uuid.UUID          `json:"id"`
	Type     shared.AccountType `json:"type"`
	OpenedOn shared.Date        `json:"opened_on"`
}

// Snapshot is the ledger's full state in recording order. The store persists
// it wholesale after every mutating call and loads it wholesale at startup.
type Snapshot struct {
	Accounts     []StoredAccount       `json:"accounts"`
	Transactions []account.Transaction `json:"transactions"`
}

// Store persists ledger snapshots durably. A Save failure must propagate to
// the in-flight operation; the ledger never swallows it.
type Store interface {
	Save(snapshot Snapshot) error
	Load() (Snapshot, error)
}

// ErrAccountNotFound indicates an account id absent from the live set,
// either never opened or already closed.
type ErrAccountNotFound struct {
	AccountID uuid.UUID
}

func (e ErrAccountNotFound) Error() string {
	return "account not found (it may have been closed): " + e.AccountID.String()
}

// Is lets errors.Is match any ErrAccountNotFound when the target carries the
// nil UUID, and a specific account otherwise.
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	if t.AccountID == uuid.Nil {
		return true
	}
	return e.AccountID == t.AccountID
}
