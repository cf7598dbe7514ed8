// Package snapshot persists ledger state as a single versioned JSON
// document, rewritten wholesale after every mutating call. Writes go to a
// temporary file which is renamed over the target, so a crash mid-write
// never corrupts the previous snapshot.
package snapshot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/ledger"
)

// FormatVersion identifies the on-disk document layout. Bump it when the
// shape of fileDocument changes incompatibly.
const FormatVersion = 1

// fileDocument is the on-disk envelope around a ledger snapshot.
type fileDocument struct {
	Version      int                    `json:"version"`
	SavedAt      time.Time              `json:"saved_at"`
	Accounts     []ledger.StoredAccount `json:"accounts"`
	Transactions []account.Transaction  `json:"transactions"`
}

// FileStore implements ledger.Store against a single JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a file store for the given path, creating the parent
// directory when missing. The file itself is only created on the first Save;
// Load treats a missing or empty file as an empty ledger.
func NewFileStore(logger *slog.Logger, path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Save writes the snapshot atomically: marshal, write to a sibling temp
// file, then rename over the target.
func (s *FileStore) Save(snap ledger.Snapshot) error {
	doc := fileDocument{
		Version:      FormatVersion,
		SavedAt:      time.Now().UTC(),
		Accounts:     snap.Accounts,
		Transactions: snap.Transactions,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing snapshot file: %w", err)
	}

	s.logger.Debug("snapshot saved",
		"path", s.path,
		"accounts", len(snap.Accounts),
		"transactions", len(snap.Transactions),
	)
	return nil
}

// Load reads the snapshot wholesale. A missing or empty file bootstraps an
// empty snapshot; a version newer than this binary understands is an error.
func (s *FileStore) Load() (ledger.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Info("no snapshot file found, starting with an empty ledger", "path", s.path)
		return ledger.Snapshot{}, nil
	}
	if err != nil {
		return ledger.Snapshot{}, fmt.Errorf("reading snapshot file: %w", err)
	}
	if len(data) == 0 {
		return ledger.Snapshot{}, nil
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("decoding snapshot file %s: %w", s.path, err)
	}
	if doc.Version > FormatVersion {
		return ledger.Snapshot{}, fmt.Errorf("snapshot file %s has unsupported version %d (max %d)", s.path, doc.Version, FormatVersion)
	}

	return ledger.Snapshot{
		Accounts:     doc.Accounts,
		Transactions: doc.Transactions,
	}, nil
}
