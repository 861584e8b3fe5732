package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senja-dev/senja/internal/model"
)

func TestTrial_CashSale(t *testing.T) {
	txs := []model.Transaction{saleTx("2024-01-001", "100000")}

	tb, err := Trial(testChart(), txs)
	require.NoError(t, err)

	rows := make(map[string]TrialBalanceRow)
	for _, row := range tb.Rows {
		rows[row.AccountID] = row
	}

	kas := rows["A101"]
	assert.True(t, kas.Debit.Equal(dec("100000")), "Kas in debit column")
	assert.True(t, kas.Credit.IsZero())

	pendapatan := rows["R401"]
	assert.True(t, pendapatan.Credit.Equal(dec("100000")), "Pendapatan in credit column as absolute value")
	assert.True(t, pendapatan.Debit.IsZero())

	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit), "columns must balance")
	assert.True(t, tb.TotalDebit.Equal(dec("100000")))
}

func TestTrial_ColumnsBalanceForAnyValidJournal(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:   "2024-01-003",
			Date: date(2024, 1, 20),
			Lines: []model.Line{
				{AccountID: "X502", Debit: dec("250000")},
				{AccountID: "A101", Credit: dec("250000")},
			},
		},
		{
			ID:   "2024-01-002",
			Date: date(2024, 1, 10),
			Lines: []model.Line{
				{AccountID: "A103", Debit: dec("80000")},
				{AccountID: "L201", Credit: dec("80000")},
			},
		},
		{
			ID:   "2024-01-001",
			Date: date(2024, 1, 1),
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("500000")},
				{AccountID: "E301", Credit: dec("500000")},
			},
		},
	}

	tb, err := Trial(testChart(), txs)
	require.NoError(t, err)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit),
		"debit %s != credit %s", tb.TotalDebit, tb.TotalCredit)
}

func TestTrial_EveryAccountListedInChartOrder(t *testing.T) {
	accounts := testChart()
	tb, err := Trial(accounts, nil)
	require.NoError(t, err)

	require.Len(t, tb.Rows, len(accounts.All()))
	for i, a := range accounts.All() {
		assert.Equal(t, a.ID, tb.Rows[i].AccountID)
	}
	assert.True(t, tb.TotalDebit.IsZero())
	assert.True(t, tb.TotalCredit.IsZero())
}

func TestTrial_Dangling(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:    "2024-01-001",
			Date:  date(2024, 1, 1),
			Lines: []model.Line{{AccountID: "GONE", Debit: dec("1000")}},
		},
	}
	_, err := Trial(testChart(), txs)
	var derr *DanglingAccountError
	assert.ErrorAs(t, err, &derr)
}
