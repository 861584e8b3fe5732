package report

import (
	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// TrialBalanceRow is one account's balance split into a debit or credit
// column.
type TrialBalanceRow struct {
	AccountID string
	Code      string
	Name      string
	Type      model.AccountType
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// TrialBalance lists every chart account with column totals. For any valid
// journal the two totals are equal; that equality is a regression check on
// the whole engine, not just a display artifact.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Trial derives the trial balance: a positive signed balance lands in the
// debit column, a negative one in the credit column as its absolute value.
func Trial(accounts Chart, txs []model.Transaction) (*TrialBalance, error) {
	balances, err := Balances(accounts, txs)
	if err != nil {
		return nil, err
	}

	tb := &TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, a := range accounts.All() {
		row := TrialBalanceRow{
			AccountID: a.ID,
			Code:      a.Code,
			Name:      a.Name,
			Type:      a.Type,
			Debit:     decimal.Zero,
			Credit:    decimal.Zero,
		}
		bal := balances[a.ID]
		if bal.IsNegative() {
			row.Credit = bal.Neg()
		} else {
			row.Debit = bal
		}
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}
	return tb, nil
}
