package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/senja-dev/senja/internal/model"
)

// Store is the persistence collaborator for the transaction list. The
// encoding is opaque to the engine; a Store only has to round-trip every
// field losslessly and preserve order.
type Store interface {
	Load() ([]model.Transaction, error)
	Save(txs []model.Transaction) error
}

// FileStore persists the journal as a CSV file. A missing file loads as an
// empty journal.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for <repoRoot>/journal.csv.
func NewFileStore(repoRoot string) *FileStore {
	return &FileStore{path: filepath.Join(repoRoot, "journal.csv")}
}

// Load reads all transactions from the journal file.
func (s *FileStore) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", s.path, err)
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", s.path, err)
	}
	return txs, nil
}

// Save rewrites the journal file with the full transaction list.
func (s *FileStore) Save(txs []model.Transaction) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating journal %s: %w", s.path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txs); err != nil {
		return fmt.Errorf("writing journal %s: %w", s.path, err)
	}
	return nil
}
