package snapshot

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/ledger"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

func testStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := NewFileStore(logger, path)
	require.NoError(t, err)
	return store, path
}

func sampleSnapshot(t *testing.T) ledger.Snapshot {
	t.Helper()
	day := shared.NewDate(2020, time.April, 1)
	accountID := uuid.New()
	tx, err := account.NewTransaction(accountID, shared.TransactionKindCredit, decimal.NewFromInt(3000), day)
	require.NoError(t, err)

	return ledger.Snapshot{
		Accounts: []ledger.StoredAccount{
			{ID: accountID, Type: shared.AccountTypeRestricted, OpenedOn: day.AddDays(-60)},
		},
		Transactions: []account.Transaction{tx},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, _ := testStore(t)
	snap := sampleSnapshot(t)

	require.NoError(t, store.Save(snap))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Accounts, 1)
	require.Len(t, loaded.Transactions, 1)

	assert.Equal(t, snap.Accounts[0], loaded.Accounts[0])
	assert.Equal(t, snap.Transactions[0].ID, loaded.Transactions[0].ID)
	assert.Equal(t, snap.Transactions[0].Kind, loaded.Transactions[0].Kind)
	assert.True(t, snap.Transactions[0].Amount.Equal(loaded.Transactions[0].Amount))
	assert.Equal(t, snap.Transactions[0].OccurredOn, loaded.Transactions[0].OccurredOn)
}

func TestFileStore_LoadMissingFileBootstrapsEmpty(t *testing.T) {
	store, path := testStore(t)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.Transactions)
}

func TestFileStore_LoadEmptyFile(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Accounts)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestFileStore_UnsupportedVersion(t *testing.T) {
	store, path := testStore(t)

	doc := map[string]any{"version": FormatVersion + 1}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = store.Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported version")
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Save(sampleSnapshot(t)))

	_, err := os.Stat(path)
	require.NoError(t, err)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileStore_SaveOverwritesWholesale(t *testing.T) {
	store, _ := testStore(t)

	require.NoError(t, store.Save(sampleSnapshot(t)))
	require.NoError(t, store.Save(ledger.Snapshot{}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Accounts)
	assert.Empty(t, loaded.Transactions)
}

func TestNewFileStore_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "ledger.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := NewFileStore(logger, path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ledger.Snapshot{}))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
