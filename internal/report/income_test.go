package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senja-dev/senja/internal/model"
)

func TestIncome_CashSale(t *testing.T) {
	txs := []model.Transaction{saleTx("2024-01-001", "100000")}

	is, err := Income(testChart(), txs)
	require.NoError(t, err)

	assert.True(t, is.TotalRevenue.Equal(dec("100000")))
	assert.True(t, is.TotalExpense.IsZero())
	assert.True(t, is.NetIncome.Equal(dec("100000")))
}

func TestIncome_PerAccountLines(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:   "2024-01-002",
			Date: date(2024, 1, 2),
			Lines: []model.Line{
				{AccountID: "X503", Debit: dec("120000")},
				{AccountID: "A101", Credit: dec("120000")},
			},
		},
		{
			ID:   "2024-01-001",
			Date: date(2024, 1, 1),
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("300000")},
				{AccountID: "R401", Credit: dec("200000")},
				{AccountID: "R402", Credit: dec("100000")},
			},
		},
	}

	is, err := Income(testChart(), txs)
	require.NoError(t, err)

	revenue := make(map[string]IncomeLine)
	for _, l := range is.Revenue {
		revenue[l.AccountID] = l
	}
	assert.True(t, revenue["R401"].Amount.Equal(dec("200000")))
	assert.True(t, revenue["R402"].Amount.Equal(dec("100000")))

	expenses := make(map[string]IncomeLine)
	for _, l := range is.Expenses {
		expenses[l.AccountID] = l
	}
	assert.True(t, expenses["X503"].Amount.Equal(dec("120000")))

	assert.True(t, is.TotalRevenue.Equal(dec("300000")))
	assert.True(t, is.TotalExpense.Equal(dec("120000")))
	assert.True(t, is.NetIncome.Equal(dec("180000")))
}

func TestIncome_MatchesBalanceSheetNetIncome(t *testing.T) {
	txs := businessMonth()

	is, err := Income(testChart(), txs)
	require.NoError(t, err)
	bs, err := Sheet(testChart(), txs)
	require.NoError(t, err)

	assert.True(t, is.NetIncome.Equal(bs.NetIncome),
		"income statement %s vs balance sheet %s", is.NetIncome, bs.NetIncome)
}

func TestIncome_Dangling(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:    "2024-01-001",
			Date:  date(2024, 1, 1),
			Lines: []model.Line{{AccountID: "GONE", Credit: dec("1")}},
		},
	}
	_, err := Income(testChart(), txs)
	var derr *DanglingAccountError
	assert.ErrorAs(t, err, &derr)
}
