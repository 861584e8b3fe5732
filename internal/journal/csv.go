package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,description,account_id,debit,credit,memo"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colEntryID = 0
	colDate    = 1
	colDesc    = 2
	colAcctID  = 3
	colDebit   = 4
	colCredit  = 5
	colMemo    = 6
)

// ReadTransactions reads a journal.csv stream. Consecutive rows sharing an
// entry_id form the lines of one transaction; file order is storage order
// (newest first).
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		entryID, date, desc, line, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		if n := len(txs); n > 0 && txs[n-1].ID == entryID {
			txs[n-1].Lines = append(txs[n-1].Lines, line)
			continue
		}
		txs = append(txs, model.Transaction{
			ID:          entryID,
			Date:        date,
			Description: desc,
			Lines:       []model.Line{line},
		})
	}
	return txs, nil
}

// WriteTransactions writes the full journal (including header), one row per
// line, preserving transaction order.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		for _, line := range tx.Lines {
			if err := cw.Write(marshalRow(tx, line)); err != nil {
				return fmt.Errorf("writing entry %s: %w", tx.ID, err)
			}
		}
	}
	return cw.Error()
}

func marshalRow(tx model.Transaction, line model.Line) []string {
	row := make([]string, numFields)
	row[colEntryID] = tx.ID
	row[colDate] = tx.Date.Format(dateFormat)
	row[colDesc] = tx.Description
	row[colAcctID] = line.AccountID

	// A blank cell means the amount is absent; an explicit "0" survives the
	// round trip as zero on that side.
	if !line.Debit.IsZero() {
		row[colDebit] = line.Debit.String()
	}
	if !line.Credit.IsZero() {
		row[colCredit] = line.Credit.String()
	}

	row[colMemo] = line.Memo
	return row
}

func unmarshalRow(record []string) (entryID string, date time.Time, desc string, line model.Line, err error) {
	if len(record) != numFields {
		return "", time.Time{}, "", model.Line{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err = time.Parse(dateFormat, record[colDate])
	if err != nil {
		return "", time.Time{}, "", model.Line{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return "", time.Time{}, "", model.Line{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return "", time.Time{}, "", model.Line{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	line = model.Line{
		AccountID: record[colAcctID],
		Debit:     debit,
		Credit:    credit,
		Memo:      record[colMemo],
	}
	return record[colEntryID], date, record[colDesc], line, nil
}
