package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/ledger"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// BankServiceImpl implements BankService over the ledger and the policy
// engine. A single mutex guards every read-validate-append sequence: two
// concurrent withdrawals must not both validate against the same stale
// balance and jointly overdraw.
type BankServiceImpl struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	clock  *SimulatedClock
	logger *slog.Logger
}

// NewBankService creates a new bank service.
func NewBankService(logger *slog.Logger, l *ledger.Ledger, clock *SimulatedClock) BankService {
	return &BankServiceImpl{
		ledger: l,
		clock:  clock,
		logger: logger,
	}
}

// orDefault resolves a zero occurring-on date to the clock's current date.
func (s *BankServiceImpl) orDefault(d shared.Date) shared.Date {
	if d.IsZero() {
		return s.clock.Today()
	}
	return d
}

// OpenAccount opens an account of the given tier, recording the account and
// its opening credit (if any) in the ledger.
func (s *BankServiceImpl) OpenAccount(ctx context.Context, accountType shared.AccountType, initialDeposit decimal.Decimal, openedOn shared.Date) (AccountDetails, *account.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	openedOn = s.orDefault(openedOn)

	acc, tx, err := account.Open(accountType, initialDeposit, openedOn)
	if err != nil {
		return AccountDetails{}, nil, err
	}

	if err := s.ledger.RecordAccount(ledger.StoredAccount{
		ID:       acc.ID,
		Type:     acc.Type,
		OpenedOn: acc.OpenedOn,
	}); err != nil {
		return AccountDetails{}, nil, err
	}
	if tx != nil {
		if err := s.ledger.RecordTransaction(*tx); err != nil {
			return AccountDetails{}, nil, err
		}
	}

	s.logger.Info("account opened",
		"account_id", acc.ID,
		"type", string(acc.Type),
		"opened_on", openedOn.String(),
		"initial_deposit", initialDeposit.String(),
	)

	return AccountDetails{
		ID:       acc.ID,
		Type:     acc.Type,
		OpenedOn: acc.OpenedOn,
		Balance:  s.ledger.Balance(acc.ID),
	}, tx, nil
}

// Deposit credits an account and records the transaction.
func (s *BankServiceImpl) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, occurringOn shared.Date) (account.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	occurringOn = s.orDefault(occurringOn)

	acc, err := s.ledger.ResolveAccount(accountID, occurringOn)
	if err != nil {
		return account.Transaction{}, err
	}
	tx, err := acc.Deposit(amount, occurringOn)
	if err != nil {
		return account.Transaction{}, err
	}
	if err := s.ledger.RecordTransaction(tx); err != nil {
		return account.Transaction{}, err
	}

	s.logger.Info("deposit recorded",
		"account_id", accountID,
		"transaction_id", tx.ID,
		"amount", amount.String(),
		"occurred_on", occurringOn.String(),
	)
	return tx, nil
}

// Withdraw debits an account after running the tier's withdrawal rules and
// records the transaction.
func (s *BankServiceImpl) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, method shared.WithdrawalMethod, occurringOn shared.Date) (account.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	occurringOn = s.orDefault(occurringOn)

	acc, err := s.ledger.ResolveAccount(accountID, occurringOn)
	if err != nil {
		return account.Transaction{}, err
	}
	tx, err := acc.Withdraw(amount, method, occurringOn)
	if err != nil {
		return account.Transaction{}, err
	}
	if err := s.ledger.RecordTransaction(tx); err != nil {
		return account.Transaction{}, err
	}

	s.logger.Info("withdrawal recorded",
		"account_id", accountID,
		"transaction_id", tx.ID,
		"amount", amount.String(),
		"method", string(method),
		"occurred_on", occurringOn.String(),
	)
	return tx, nil
}

// CloseAccount withdraws any remaining balance as a terminal debit, then
// removes the account from the live set. Once removed, the id resolves to
// not-found; the historical transactions stay in the log.
func (s *BankServiceImpl) CloseAccount(ctx context.Context, accountID uuid.UUID, occurringOn shared.Date) (*account.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	occurringOn = s.orDefault(occurringOn)

	acc, err := s.ledger.ResolveAccount(accountID, occurringOn)
	if err != nil {
		return nil, err
	}
	tx, err := acc.Close(occurringOn)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		if err := s.ledger.RecordTransaction(*tx); err != nil {
			return nil, err
		}
	}
	if err := s.ledger.CloseAccount(accountID); err != nil {
		return nil, err
	}

	s.logger.Info("account closed",
		"account_id", accountID,
		"balance_withdrawn", tx != nil,
		"occurred_on", occurringOn.String(),
	)
	return tx, nil
}

// AccountDetails returns the derived read model for one live account.
func (s *BankServiceImpl) AccountDetails(ctx context.Context, accountID uuid.UUID) (AccountDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountDetailsLocked(accountID)
}

func (s *BankServiceImpl) accountDetailsLocked(accountID uuid.UUID) (AccountDetails, error) {
	acc, err := s.ledger.ResolveAccount(accountID, s.clock.Today())
	if err != nil {
		return AccountDetails{}, err
	}
	return AccountDetails{
		ID:       acc.ID,
		Type:     acc.Type,
		OpenedOn: acc.OpenedOn,
		Balance:  acc.Balance,
	}, nil
}

// AllAccounts returns details of every live account in recording order.
func (s *BankServiceImpl) AllAccounts(ctx context.Context) ([]AccountDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.ledger.AccountIDs()
	details := make([]AccountDetails, 0, len(ids))
	for _, id := range ids {
		d, err := s.accountDetailsLocked(id)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// AllTransactions returns every transaction in recording order.
func (s *BankServiceImpl) AllTransactions(ctx context.Context) ([]account.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Transactions(), nil
}

// AccountTransactions returns an account's transactions in recording order.
func (s *BankServiceImpl) AccountTransactions(ctx context.Context, accountID uuid.UUID) ([]account.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TransactionsByAccount(accountID), nil
}

// Transaction returns one transaction by id.
func (s *BankServiceImpl) Transaction(ctx context.Context, transactionID uuid.UUID) (account.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Transaction(transactionID)
}

// CurrentDate returns the simulated clock's date.
func (s *BankServiceImpl) CurrentDate() shared.Date {
	return s.clock.Today()
}

// SetCurrentDate moves the simulated clock.
func (s *BankServiceImpl) SetCurrentDate(d shared.Date) {
	s.clock.Set(d)
	s.logger.Info("current date changed", "date", d.String())
}
