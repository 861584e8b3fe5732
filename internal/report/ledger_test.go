package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senja-dev/senja/internal/model"
)

// kasActivity builds a newest-first journal touching Kas three times.
func kasActivity() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "2024-01-003",
			Date:        date(2024, 1, 20),
			Description: "Bayar gaji",
			Lines: []model.Line{
				{AccountID: "X502", Debit: dec("150000")},
				{AccountID: "A101", Credit: dec("150000")},
			},
		},
		{
			ID:          "2024-01-002",
			Date:        date(2024, 1, 10),
			Description: "Penjualan tunai",
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("200000")},
				{AccountID: "R401", Credit: dec("200000")},
			},
		},
		{
			ID:          "2024-01-001",
			Date:        date(2024, 1, 1),
			Description: "Setoran modal",
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("500000")},
				{AccountID: "E301", Credit: dec("500000")},
			},
		},
	}
}

func TestAccountLedger_ChronologicalReplay(t *testing.T) {
	ledger, err := AccountLedger(testChart(), kasActivity(), "A101")
	require.NoError(t, err)

	assert.Equal(t, "Kas", ledger.Account.Name)
	require.Len(t, ledger.Rows, 3)

	// Oldest first regardless of newest-first storage.
	assert.Equal(t, "2024-01-001", ledger.Rows[0].EntryID)
	assert.True(t, ledger.Rows[0].Balance.Equal(dec("500000")))

	assert.Equal(t, "2024-01-002", ledger.Rows[1].EntryID)
	assert.True(t, ledger.Rows[1].Balance.Equal(dec("700000")))

	assert.Equal(t, "2024-01-003", ledger.Rows[2].EntryID)
	assert.True(t, ledger.Rows[2].Credit.Equal(dec("150000")))
	assert.True(t, ledger.Rows[2].Balance.Equal(dec("550000")))
}

func TestAccountLedger_SortsByDateNotInsertion(t *testing.T) {
	// Backdated entry stored most recently: date order must win.
	txs := []model.Transaction{
		{
			ID:   "2024-01-002",
			Date: date(2024, 1, 1), // backdated
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("100")},
				{AccountID: "E301", Credit: dec("100")},
			},
		},
		{
			ID:   "2024-01-001",
			Date: date(2024, 1, 5),
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("200")},
				{AccountID: "E301", Credit: dec("200")},
			},
		},
	}

	ledger, err := AccountLedger(testChart(), txs, "A101")
	require.NoError(t, err)
	require.Len(t, ledger.Rows, 2)
	assert.Equal(t, "2024-01-002", ledger.Rows[0].EntryID)
	assert.Equal(t, "2024-01-001", ledger.Rows[1].EntryID)
}

func TestAccountLedger_FinalBalanceMatchesAggregate(t *testing.T) {
	txs := kasActivity()
	accounts := testChart()

	balances, err := Balances(accounts, txs)
	require.NoError(t, err)

	for _, a := range accounts.All() {
		ledger, err := AccountLedger(accounts, txs, a.ID)
		require.NoError(t, err)
		assert.True(t, ledger.Balance.Equal(balances[a.ID]),
			"account %s: ledger %s vs aggregate %s", a.ID, ledger.Balance, balances[a.ID])
	}
}

func TestAccountLedger_NoActivity(t *testing.T) {
	ledger, err := AccountLedger(testChart(), kasActivity(), "L202")
	require.NoError(t, err)
	assert.Empty(t, ledger.Rows)
	assert.True(t, ledger.Balance.IsZero())
}

func TestAccountLedger_UnknownSelection(t *testing.T) {
	_, err := AccountLedger(testChart(), nil, "ZZZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZZZ")
}

func TestAccountLedger_Dangling(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:   "2024-01-001",
			Date: date(2024, 1, 1),
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("1000")},
				{AccountID: "GONE", Credit: dec("1000")},
			},
		},
	}
	_, err := AccountLedger(testChart(), txs, "A101")
	var derr *DanglingAccountError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "GONE", derr.AccountID)
}
