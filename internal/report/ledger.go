package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// LedgerRow is one matching line of the selected account with the running
// balance after it.
type LedgerRow struct {
	EntryID     string
	Date        time.Time
	Description string
	Memo        string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// Ledger is the per-account running-balance view. The final Balance equals
// the aggregate balance for the same transaction set.
type Ledger struct {
	Account model.Account
	Rows    []LedgerRow
	Balance decimal.Decimal
}

// AccountLedger replays all transactions in chronological order and emits a
// row per line touching accountID, with a running balance seeded at 0.
// Storage order is newest first, so the replay re-sorts: reversed insertion
// order, then a stable sort by date.
func AccountLedger(accounts Chart, txs []model.Transaction, accountID string) (*Ledger, error) {
	acct, ok := accounts.FindByID(accountID)
	if !ok {
		return nil, fmt.Errorf("unknown account %q", accountID)
	}

	ordered := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		ordered[len(txs)-1-i] = tx
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	ledger := &Ledger{Account: acct, Balance: decimal.Zero}
	for _, tx := range ordered {
		for _, line := range tx.Lines {
			if !accounts.Exists(line.AccountID) {
				return nil, &DanglingAccountError{EntryID: tx.ID, AccountID: line.AccountID}
			}
			if line.AccountID != accountID {
				continue
			}
			ledger.Balance = ledger.Balance.Add(line.Debit).Sub(line.Credit)
			ledger.Rows = append(ledger.Rows, LedgerRow{
				EntryID:     tx.ID,
				Date:        tx.Date,
				Description: tx.Description,
				Memo:        line.Memo,
				Debit:       line.Debit,
				Credit:      line.Credit,
				Balance:     ledger.Balance,
			})
		}
	}
	return ledger, nil
}
