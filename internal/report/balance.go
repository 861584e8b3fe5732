// Package report derives accounting reports from the transaction list.
// Every deriver is a pure function over a chart of accounts and a snapshot
// of transactions; nothing here caches or mutates state.
//
// Balances are signed: debits add, credits subtract. Asset and expense
// accounts are therefore naturally positive and presented as-is; liability,
// equity, and revenue accounts are naturally negative and presented negated.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// Chart is the account lookup surface derivers need.
type Chart interface {
	All() []model.Account
	FindByID(id string) (model.Account, bool)
	Exists(id string) bool
}

// DanglingAccountError reports a stored line referencing an account missing
// from the chart of accounts. This is a data integrity fault: derivers
// surface it instead of silently dropping the line.
type DanglingAccountError struct {
	EntryID   string
	AccountID string
}

func (e *DanglingAccountError) Error() string {
	return fmt.Sprintf("entry %s references account %q not in chart of accounts", e.EntryID, e.AccountID)
}

// Balances folds the full transaction list into a per-account signed
// balance (sum of debits minus sum of credits). Every chart account appears
// in the result, zero-valued if inactive. Traversal order does not matter.
func Balances(accounts Chart, txs []model.Transaction) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(accounts.All()))
	for _, a := range accounts.All() {
		balances[a.ID] = decimal.Zero
	}

	for _, tx := range txs {
		for _, line := range tx.Lines {
			bal, ok := balances[line.AccountID]
			if !ok {
				return nil, &DanglingAccountError{EntryID: tx.ID, AccountID: line.AccountID}
			}
			balances[line.AccountID] = bal.Add(line.Debit).Sub(line.Credit)
		}
	}
	return balances, nil
}

// netIncome computes total revenue (negated) minus total expense (as-is)
// from a balance map. Both the income statement and the balance sheet use
// this, so the two reports agree by construction.
func netIncome(accounts Chart, balances map[string]decimal.Decimal) (revenue, expense, net decimal.Decimal) {
	revenue = decimal.Zero
	expense = decimal.Zero
	for _, a := range accounts.All() {
		switch a.Type {
		case model.AccountTypeRevenue:
			revenue = revenue.Add(balances[a.ID].Neg())
		case model.AccountTypeExpense:
			expense = expense.Add(balances[a.ID])
		}
	}
	return revenue, expense, revenue.Sub(expense)
}
