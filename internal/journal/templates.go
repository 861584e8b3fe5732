package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// Template is a named debit/credit account pairing for a common transaction
// type. Templates only pre-fill a two-line draft; the result still goes
// through Validate like any hand-built entry.
type Template struct {
	Name          string
	Description   string
	DebitAccount  string
	CreditAccount string
}

// Templates returns the built-in transaction templates, in menu order.
func Templates() []Template {
	return []Template{
		{Name: "penjualan_tunai", Description: "Penjualan tunai", DebitAccount: "A101", CreditAccount: "R401"},
		{Name: "penjualan_kredit", Description: "Penjualan kredit", DebitAccount: "A102", CreditAccount: "R401"},
		{Name: "pembelian_tunai", Description: "Pembelian bahan tunai", DebitAccount: "A103", CreditAccount: "A101"},
		{Name: "pembelian_kredit", Description: "Pembelian bahan kredit", DebitAccount: "A103", CreditAccount: "L201"},
		{Name: "setor_modal", Description: "Setoran modal pemilik", DebitAccount: "A101", CreditAccount: "E301"},
		{Name: "bayar_hutang", Description: "Pembayaran utang usaha", DebitAccount: "L201", CreditAccount: "A101"},
		{Name: "beban_gaji", Description: "Pembayaran gaji", DebitAccount: "X502", CreditAccount: "A101"},
		{Name: "beban_listrik", Description: "Pembayaran listrik", DebitAccount: "X503", CreditAccount: "A101"},
		{Name: "beban_internet", Description: "Pembayaran internet", DebitAccount: "X506", CreditAccount: "A101"},
		{Name: "prive", Description: "Pengambilan prive", DebitAccount: "E302", CreditAccount: "A101"},
	}
}

// FindTemplate returns the template with the given name.
func FindTemplate(name string) (Template, bool) {
	for _, tpl := range Templates() {
		if tpl.Name == name {
			return tpl, true
		}
	}
	return Template{}, false
}

// Draft builds a balanced two-line draft from the template. An empty
// description falls back to the template's own.
func (t Template) Draft(date time.Time, description string, amount decimal.Decimal) Draft {
	if description == "" {
		description = t.Description
	}
	return Draft{
		Date:        date,
		Description: description,
		Lines: []model.Line{
			{AccountID: t.DebitAccount, Debit: amount},
			{AccountID: t.CreditAccount, Credit: amount},
		},
	}
}
