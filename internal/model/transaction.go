package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a single row of a journal entry (one side of a double-entry).
type Line struct {
	AccountID string
	Debit     decimal.Decimal // zero if credit side
	Credit    decimal.Decimal // zero if debit side
	Memo      string
}

// Transaction is an accepted journal entry. The ID is assigned at acceptance
// and stable thereafter; entries are appended and deleted whole, never edited.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Lines       []Line
}

// TotalDebit sums the debit side of all lines.
func (t Transaction) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (t Transaction) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Clone returns a copy with its own lines slice, so callers can hold a
// snapshot that later store mutations cannot touch.
func (t Transaction) Clone() Transaction {
	out := t
	out.Lines = make([]Line, len(t.Lines))
	copy(out.Lines, t.Lines)
	return out
}
