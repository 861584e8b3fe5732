package chart

import "github.com/senja-dev/senja/internal/model"

// DefaultChart returns the default chart of accounts for a small food
// business. Account IDs carry a type prefix; codes group by type
// (1xx asset, 2xx liability, 3xx equity, 4xx revenue, 5xx expense).
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: "A101", Code: "101", Name: "Kas", Type: model.AccountTypeAsset},
		{ID: "A102", Code: "102", Name: "Piutang Usaha", Type: model.AccountTypeAsset},
		{ID: "A103", Code: "103", Name: "Persediaan Bahan", Type: model.AccountTypeAsset},
		{ID: "A104", Code: "104", Name: "Perlengkapan", Type: model.AccountTypeAsset},
		{ID: "A105", Code: "105", Name: "Peralatan", Type: model.AccountTypeAsset},

		{ID: "L201", Code: "201", Name: "Utang Usaha", Type: model.AccountTypeLiability},
		{ID: "L202", Code: "202", Name: "Utang Bank", Type: model.AccountTypeLiability},

		{ID: "E301", Code: "301", Name: "Modal Pemilik", Type: model.AccountTypeEquity},
		{ID: "E302", Code: "302", Name: "Prive", Type: model.AccountTypeEquity},

		{ID: "R401", Code: "401", Name: "Pendapatan Penjualan Makanan", Type: model.AccountTypeRevenue},
		{ID: "R402", Code: "402", Name: "Pendapatan Penjualan Minuman", Type: model.AccountTypeRevenue},

		{ID: "X501", Code: "501", Name: "Beban Bahan Baku", Type: model.AccountTypeExpense},
		{ID: "X502", Code: "502", Name: "Beban Gaji", Type: model.AccountTypeExpense},
		{ID: "X503", Code: "503", Name: "Beban Listrik", Type: model.AccountTypeExpense},
		{ID: "X504", Code: "504", Name: "Beban Gas", Type: model.AccountTypeExpense},
		{ID: "X505", Code: "505", Name: "Beban Sewa", Type: model.AccountTypeExpense},
		{ID: "X506", Code: "506", Name: "Beban Internet", Type: model.AccountTypeExpense},
		{ID: "X507", Code: "507", Name: "Beban Lain-lain", Type: model.AccountTypeExpense},
	}
}
