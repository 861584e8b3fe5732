package importer

import (
	"github.com/senja-dev/senja/internal/journal"
	"github.com/senja-dev/senja/internal/model"
)

// TargetAccounts names the chart accounts imported statement rows map to.
type TargetAccounts struct {
	Cash    string
	Revenue string // for money in
	Expense string // for money out
}

// Drafts converts parsed statement rows into candidate journal entries:
// money in debits cash and credits revenue, money out debits expense and
// credits cash. Zero-amount rows are skipped. Drafts still pass through
// journal validation before acceptance.
func Drafts(txns []model.BankTransaction, targets TargetAccounts) []journal.Draft {
	var drafts []journal.Draft
	for _, txn := range txns {
		if txn.Amount.IsZero() {
			continue
		}

		draft := journal.Draft{
			Date:        txn.Date,
			Description: txn.Description,
		}
		if txn.Amount.IsPositive() {
			draft.Lines = []model.Line{
				{AccountID: targets.Cash, Debit: txn.Amount, Memo: txn.Reference},
				{AccountID: targets.Revenue, Credit: txn.Amount},
			}
		} else {
			amount := txn.Amount.Neg()
			draft.Lines = []model.Line{
				{AccountID: targets.Expense, Debit: amount, Memo: txn.Reference},
				{AccountID: targets.Cash, Credit: amount},
			}
		}
		drafts = append(drafts, draft)
	}
	return drafts
}
