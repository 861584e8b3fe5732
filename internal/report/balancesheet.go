package report

import (
	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// NetIncomeLabel names the synthetic equity line item on the balance sheet.
// It is derived on every query, never stored as an account.
const NetIncomeLabel = "Laba (Rugi) Bersih"

// SheetLine is a single balance-sheet line. The synthetic net income line
// has an empty AccountID.
type SheetLine struct {
	AccountID string
	Code      string
	Name      string
	Amount    decimal.Decimal
}

// BalanceSheet presents assets as-is and liabilities/equity negated, with
// net income folded into equity so that total assets equal total
// liabilities plus total equity.
type BalanceSheet struct {
	Assets      []SheetLine
	Liabilities []SheetLine
	Equity      []SheetLine // ends with the synthetic net income line
	NetIncome   decimal.Decimal

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// Sheet derives the balance sheet from the balance map.
func Sheet(accounts Chart, txs []model.Transaction) (*BalanceSheet, error) {
	balances, err := Balances(accounts, txs)
	if err != nil {
		return nil, err
	}

	bs := &BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, a := range accounts.All() {
		bal := balances[a.ID]
		switch a.Type {
		case model.AccountTypeAsset:
			bs.Assets = append(bs.Assets, SheetLine{AccountID: a.ID, Code: a.Code, Name: a.Name, Amount: bal})
			bs.TotalAssets = bs.TotalAssets.Add(bal)
		case model.AccountTypeLiability:
			bs.Liabilities = append(bs.Liabilities, SheetLine{AccountID: a.ID, Code: a.Code, Name: a.Name, Amount: bal.Neg()})
			bs.TotalLiabilities = bs.TotalLiabilities.Add(bal.Neg())
		case model.AccountTypeEquity:
			bs.Equity = append(bs.Equity, SheetLine{AccountID: a.ID, Code: a.Code, Name: a.Name, Amount: bal.Neg()})
			bs.TotalEquity = bs.TotalEquity.Add(bal.Neg())
		}
	}

	_, _, net := netIncome(accounts, balances)
	bs.NetIncome = net
	bs.Equity = append(bs.Equity, SheetLine{Name: NetIncomeLabel, Amount: net})
	bs.TotalEquity = bs.TotalEquity.Add(net)

	return bs, nil
}
