package commands

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/chart"
	"github.com/senja-dev/senja/internal/config"
	"github.com/senja-dev/senja/internal/gitops"
	"github.com/senja-dev/senja/internal/journal"
)

// ledger bundles everything a command needs against one repo.
type ledger struct {
	root     string
	cfg      *config.Config
	accounts *chart.Service
	journal  *journal.Service
}

// openLedger loads config, chart of accounts, and journal from repoRoot.
func openLedger(repoRoot string) (*ledger, error) {
	root, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, "senja.yaml"))
	if err != nil {
		return nil, err
	}

	accounts, err := chart.Load(root)
	if err != nil {
		return nil, err
	}

	svc, err := journal.NewService(accounts, journal.NewFileStore(root), cfg.Currency.Decimals)
	if err != nil {
		return nil, err
	}

	return &ledger{root: root, cfg: cfg, accounts: accounts, journal: svc}, nil
}

// snapshot commits the data files after a mutation when auto_commit is on.
func (l *ledger) snapshot(message string) error {
	if !l.cfg.Git.AutoCommit || !gitops.IsRepo(l.root) {
		return nil
	}
	_, err := gitops.CommitAll(l.root, message, l.cfg.Git.AuthorName, l.cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// amount renders a decimal at the configured currency precision.
func (l *ledger) amount(d decimal.Decimal) string {
	return d.StringFixed(l.cfg.Currency.Decimals)
}
