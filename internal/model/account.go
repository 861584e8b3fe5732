package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account represents a row in chart-of-accounts.csv. Accounts are fixed at
// startup; the engine never creates, mutates, or deletes them.
type Account struct {
	ID   string
	Code string // short numeric string, display ordering and lookup
	Name string
	Type AccountType
}
