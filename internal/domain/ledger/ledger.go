// Package ledger implements the append-only store of accounts and
// transactions. It is the sole source of truth for balances: aggregates are
// recomputed by folding the transaction log, never cached, so the log cannot
// diverge from a denormalized balance field. The scans are O(n) per query,
// which is acceptable for a small local log.
package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// Ledger holds accounts and transactions in recording order and persists the
// whole store through its Store after every append. It is not safe for
// concurrent use; the service layer serializes access.
type Ledger struct {
	store Store

	accountOrder []uuid.UUID
	accounts     map[uuid.UUID]StoredAccount

	transactionOrder []uuid.UUID
	transactions     map[uuid.UUID]account.Transaction
}

// Open loads the persisted snapshot into a new ledger. A store reporting an
// empty snapshot (first run) yields an empty ledger.
func Open(store Store) (*Ledger, error) {
	snapshot, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}

	l := &Ledger{
		store:        store,
		accounts:     make(map[uuid.UUID]StoredAccount, len(snapshot.Accounts)),
		transactions: make(map[uuid.UUID]account.Transaction, len(snapshot.Transactions)),
	}
	for _, sa := range snapshot.Accounts {
		l.accountOrder = append(l.accountOrder, sa.ID)
		l.accounts[sa.ID] = sa
	}
	for _, tx := range snapshot.Transactions {
		l.transactionOrder = append(l.transactionOrder, tx.ID)
		l.transactions[tx.ID] = tx
	}
	return l, nil
}

// RecordAccount appends an account to the live set and persists the store.
func (l *Ledger) RecordAccount(sa StoredAccount) error {
	if _, exists := l.accounts[sa.ID]; !exists {
		l.accountOrder = append(l.accountOrder, sa.ID)
	}
	l.accounts[sa.ID] = sa
	return l.persist()
}

// RecordTransaction appends a transaction to the log and persists the store.
func (l *Ledger) RecordTransaction(tx account.Transaction) error {
	if _, exists := l.transactions[tx.ID]; !exists {
		l.transactionOrder = append(l.transactionOrder, tx.ID)
	}
	l.transactions[tx.ID] = tx
	return l.persist()
}

// Balance folds every transaction recorded against the account:
// +amount for credits, -amount for debits.
func (l *Ledger) Balance(accountID uuid.UUID) decimal.Decimal {
	balance := decimal.Zero
	for _, id := range l.transactionOrder {
		tx := l.transactions[id]
		if tx.AccountID == accountID {
			balance = balance.Add(tx.Signed())
		}
	}
	return balance
}

// WithdrawnOn folds the account's debits on the given day. The result is the
// absolute sum, always non-negative.
func (l *Ledger) WithdrawnOn(accountID uuid.UUID, on shared.Date) decimal.Decimal {
	total := decimal.Zero
	for _, id := range l.transactionOrder {
		tx := l.transactions[id]
		if tx.AccountID == accountID && tx.Kind == shared.TransactionKindDebit && tx.OccurredOn == on {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// ResolveAccount reconstructs a policy-bearing account value from its stored
// tier, its derived balance and the day's derived withdrawal total. Fails
// with ErrAccountNotFound when the id is absent from the live set.
func (l *Ledger) ResolveAccount(accountID uuid.UUID, today shared.Date) (account.Account, error) {
	sa, ok := l.accounts[accountID]
	if !ok {
		return account.Account{}, ErrAccountNotFound{AccountID: accountID}
	}
	return account.Account{
		ID:             sa.ID,
		Type:           sa.Type,
		OpenedOn:       sa.OpenedOn,
		Balance:        l.Balance(accountID),
		WithdrawnToday: l.WithdrawnOn(accountID, today),
	}, nil
}

// CloseAccount removes the account from the live set and persists. This is
// the point of no return: subsequent resolves fail with ErrAccountNotFound.
// The account's historical transactions remain in the log.
func (l *Ledger) CloseAccount(accountID uuid.UUID) error {
	if _, ok := l.accounts[accountID]; !ok {
		return ErrAccountNotFound{AccountID: accountID}
	}
	delete(l.accounts, accountID)
	for i, id := range l.accountOrder {
		if id == accountID {
			l.accountOrder = append(l.accountOrder[:i], l.accountOrder[i+1:]...)
			break
		}
	}
	return l.persist()
}

// AccountIDs returns the live account ids in recording order.
func (l *Ledger) AccountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.accountOrder))
	copy(ids, l.accountOrder)
	return ids
}

// Account returns a stored account by id.
func (l *Ledger) Account(accountID uuid.UUID) (StoredAccount, bool) {
	sa, ok := l.accounts[accountID]
	return sa, ok
}

// Transactions returns every transaction in recording order.
func (l *Ledger) Transactions() []account.Transaction {
	txs := make([]account.Transaction, 0, len(l.transactionOrder))
	for _, id := range l.transactionOrder {
		txs = append(txs, l.transactions[id])
	}
	return txs
}

// Transaction returns a transaction by id.
func (l *Ledger) Transaction(id uuid.UUID) (account.Transaction, bool) {
	tx, ok := l.transactions[id]
	return tx, ok
}

// TransactionsByAccount returns the account's transactions in recording
// order, including those of closed accounts.
func (l *Ledger) TransactionsByAccount(accountID uuid.UUID) []account.Transaction {
	var txs []account.Transaction
	for _, id := range l.transactionOrder {
		if tx := l.transactions[id]; tx.AccountID == accountID {
			txs = append(txs, tx)
		}
	}
	return txs
}

// IsEmpty reports whether the ledger holds no accounts and no transactions.
func (l *Ledger) IsEmpty() bool {
	return len(l.accounts) == 0 && len(l.transactions) == 0
}

func (l *Ledger) snapshot() Snapshot {
	snap := Snapshot{
		Accounts:     make([]StoredAccount, 0, len(l.accountOrder)),
		Transactions: make([]account.Transaction, 0, len(l.transactionOrder)),
	}
	for _, id := range l.accountOrder {
		snap.Accounts = append(snap.Accounts, l.accounts[id])
	}
	for _, id := range l.transactionOrder {
		snap.Transactions = append(snap.Transactions, l.transactions[id])
	}
	return snap
}

func (l *Ledger) persist() error {
	if err := l.store.Save(l.snapshot()); err != nil {
		return fmt.Errorf("persisting ledger snapshot: %w", err)
	}
	return nil
}
