package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/senja-dev/senja/internal/id"
	"github.com/senja-dev/senja/internal/model"
)

// ErrNotFound is returned by Delete when no transaction has the given ID.
var ErrNotFound = errors.New("transaction not found")

// Service owns the in-memory transaction list and the persistence
// collaborator. The list is ordered newest first; Add and Delete are the only
// mutations, both whole-transaction, and each one saves the full list.
type Service struct {
	accounts AccountChecker
	store    Store
	decimals int32
	txs      []model.Transaction // newest first

	now func() time.Time
}

// NewService loads the journal from store and returns a Service. decimals is
// the smallest currency unit used when comparing entry totals.
func NewService(accounts AccountChecker, store Store, decimals int32) (*Service, error) {
	txs, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	return &Service{
		accounts: accounts,
		store:    store,
		decimals: decimals,
		txs:      txs,
		now:      time.Now,
	}, nil
}

// Add validates a draft, assigns an entry ID and defaulted date, prepends the
// accepted transaction, and saves. A validation failure leaves the journal
// untouched.
func (s *Service) Add(draft Draft) (model.Transaction, error) {
	if err := Validate(draft, s.accounts, s.decimals); err != nil {
		return model.Transaction{}, err
	}

	date := draft.Date
	if date.IsZero() {
		now := s.now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	tx := model.Transaction{
		ID:          id.FormatEntryID(date.Year(), int(date.Month()), s.nextSeq(date.Year(), int(date.Month()))),
		Date:        date,
		Description: draft.Description,
		Lines:       append([]model.Line(nil), draft.Lines...),
	}

	updated := append([]model.Transaction{tx}, s.txs...)
	if err := s.store.Save(updated); err != nil {
		return model.Transaction{}, fmt.Errorf("saving journal: %w", err)
	}
	s.txs = updated
	return tx, nil
}

// Delete removes a whole transaction by ID and saves. Returns ErrNotFound if
// no transaction matches.
func (s *Service) Delete(entryID string) error {
	idx := -1
	for i, tx := range s.txs {
		if tx.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, entryID)
	}

	updated := make([]model.Transaction, 0, len(s.txs)-1)
	updated = append(updated, s.txs[:idx]...)
	updated = append(updated, s.txs[idx+1:]...)

	if err := s.store.Save(updated); err != nil {
		return fmt.Errorf("saving journal: %w", err)
	}
	s.txs = updated
	return nil
}

// Transactions returns a snapshot of the journal, newest first. Report
// derivers work against the snapshot and never observe later mutations.
func (s *Service) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.txs))
	for i, tx := range s.txs {
		out[i] = tx.Clone()
	}
	return out
}

// nextSeq returns the next free sequence number within a year/month.
func (s *Service) nextSeq(year, month int) int {
	maxSeq := 0
	for _, tx := range s.txs {
		y, m, seq, err := id.ParseEntryID(tx.ID)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
