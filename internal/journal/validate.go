package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/senja-dev/senja/internal/model"
)

// Code identifies the invariant a draft entry violated.
type Code string

const (
	CodeEmptyEntry     Code = "empty_entry"
	CodeUnknownAccount Code = "unknown_account"
	CodeNegativeAmount Code = "negative_amount"
	CodeAmbiguousLine  Code = "ambiguous_line"
	CodeUnbalanced     Code = "unbalanced"
)

// ValidationError describes why a draft entry was rejected. Rejection is
// local: the draft is discarded, previously accepted entries are untouched.
type ValidationError struct {
	Code        Code
	Line        int // 1-based line number, 0 for entry-level violations
	Description string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Code, e.Line, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id string) bool
}

// Draft is a candidate journal entry before validation. A zero Date means
// "today".
type Draft struct {
	Date        time.Time
	Description string
	Lines       []model.Line
}

// Validate enforces the double-entry invariants on a draft, short-circuiting
// on the first violation. Amount totals are compared after rounding both
// sides to decimals places (the smallest currency unit). Validate performs
// no I/O and has no side effects.
func Validate(draft Draft, accounts AccountChecker, decimals int32) error {
	if len(draft.Lines) == 0 {
		return &ValidationError{Code: CodeEmptyEntry, Description: "entry has no lines"}
	}

	for i, line := range draft.Lines {
		if !accounts.Exists(line.AccountID) {
			return &ValidationError{
				Code:        CodeUnknownAccount,
				Line:        i + 1,
				Description: fmt.Sprintf("unknown account %q", line.AccountID),
			}
		}
	}

	for i, line := range draft.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return &ValidationError{
				Code:        CodeNegativeAmount,
				Line:        i + 1,
				Description: fmt.Sprintf("debit %s / credit %s must be non-negative", line.Debit, line.Credit),
			}
		}
	}

	for i, line := range draft.Lines {
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit == hasCredit {
			return &ValidationError{
				Code:        CodeAmbiguousLine,
				Line:        i + 1,
				Description: "line must have exactly one of debit or credit",
			}
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range draft.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	totalDebit = totalDebit.Round(decimals)
	totalCredit = totalCredit.Round(decimals)
	if !totalDebit.Equal(totalCredit) {
		return &ValidationError{
			Code:        CodeUnbalanced,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit, totalCredit),
		}
	}

	return nil
}
