package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senja-dev/senja/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCSVRoundTrip(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:          "2024-01-002",
			Date:        date(2024, 1, 5),
			Description: "Beli bahan baku",
			Lines: []model.Line{
				{AccountID: "A103", Debit: dec("250000"), Memo: "pasar pagi"},
				{AccountID: "A101", Credit: dec("250000")},
			},
		},
		{
			ID:          "2024-01-001",
			Date:        date(2024, 1, 1),
			Description: "Penjualan tunai",
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("100000")},
				{AccountID: "R401", Credit: dec("100000")},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-01-002", got[0].ID)
	assert.Equal(t, "Beli bahan baku", got[0].Description)
	require.Len(t, got[0].Lines, 2)
	assert.True(t, got[0].Lines[0].Debit.Equal(dec("250000")))
	assert.True(t, got[0].Lines[0].Credit.IsZero())
	assert.Equal(t, "pasar pagi", got[0].Lines[0].Memo)
	assert.True(t, got[0].Lines[1].Credit.Equal(dec("250000")))
	assert.Equal(t, date(2024, 1, 5), got[0].Date)

	assert.Equal(t, "2024-01-001", got[1].ID)
}

func TestCSVRoundTripMultiLine(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:          "2024-02-001",
			Date:        date(2024, 2, 10),
			Description: "Penjualan campur",
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("150000")},
				{AccountID: "R401", Credit: dec("100000")},
				{AccountID: "R402", Credit: dec("50000")},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Lines, 3)
}

func TestReadTransactionsEmpty(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ReadTransactions(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadTransactionsBadRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"bad date", "2024-01-001,notadate,desc,A101,100,,"},
		{"bad debit", "2024-01-001,2024-01-01,desc,A101,abc,,"},
		{"bad credit", "2024-01-001,2024-01-01,desc,A101,,abc,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTransactions(strings.NewReader(Header + "\n" + tt.row + "\n"))
			assert.Error(t, err)
		})
	}
}

func TestCSVBlankAmountIsAbsent(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:   "2024-03-001",
			Date: date(2024, 3, 1),
			Lines: []model.Line{
				{AccountID: "A101", Debit: dec("1000")},
				{AccountID: "R401", Credit: dec("1000")},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	// The credit side of the debit row must be blank, not "0".
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2024-03-001,2024-03-01,,A101,1000,,", lines[1])
	assert.Equal(t, "2024-03-001,2024-03-01,,R401,,1000,", lines[2])
}
