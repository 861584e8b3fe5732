package report

import (
	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// IncomeLine is one revenue or expense account presented with its positive
// report amount.
type IncomeLine struct {
	AccountID string
	Code      string
	Name      string
	Amount    decimal.Decimal
}

// IncomeStatement totals revenue (negated balances) and expense (as-is).
// NetIncome is the same figure the balance sheet injects into equity; both
// reports read the same balance map.
type IncomeStatement struct {
	Revenue  []IncomeLine
	Expenses []IncomeLine

	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
}

// Income derives the income statement from the balance map.
func Income(accounts Chart, txs []model.Transaction) (*IncomeStatement, error) {
	balances, err := Balances(accounts, txs)
	if err != nil {
		return nil, err
	}

	is := &IncomeStatement{}
	for _, a := range accounts.All() {
		switch a.Type {
		case model.AccountTypeRevenue:
			is.Revenue = append(is.Revenue, IncomeLine{AccountID: a.ID, Code: a.Code, Name: a.Name, Amount: balances[a.ID].Neg()})
		case model.AccountTypeExpense:
			is.Expenses = append(is.Expenses, IncomeLine{AccountID: a.ID, Code: a.Code, Name: a.Name, Amount: balances[a.ID]})
		}
	}

	is.TotalRevenue, is.TotalExpense, is.NetIncome = netIncome(accounts, balances)
	return is, nil
}
