package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/senja-dev/senja/internal/journal"
	"github.com/senja-dev/senja/internal/model"
)

const dateFlagFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var repoDir string
	var dateStr string
	var desc string
	var template string
	var debitAcct string
	var creditAcct string
	var amountStr string
	var lineSpecs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a journal entry",
		Long: `Record a journal entry, three ways:

  senja add --template penjualan_tunai --amount 150000
  senja add --debit A101 --credit R401 --amount 150000
  senja add --line A101:debit:150000 --line R401:credit:100000 --line R402:credit:50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr != "" {
				date, err = time.Parse(dateFlagFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", dateStr, err)
				}
			}

			draft, err := buildDraft(date, desc, template, debitAcct, creditAcct, amountStr, lineSpecs)
			if err != nil {
				return err
			}

			tx, err := l.journal.Add(draft)
			if err != nil {
				return err
			}

			if err := l.snapshot("journal: add " + tx.ID); err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s, %s %s)\n", tx.ID, tx.Date.Format(dateFlagFormat), l.amount(tx.TotalDebit()), l.cfg.Currency.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "entry description")
	cmd.Flags().StringVar(&template, "template", "", "transaction template name")
	cmd.Flags().StringVar(&debitAcct, "debit", "", "debit account ID")
	cmd.Flags().StringVar(&creditAcct, "credit", "", "credit account ID")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount for --template or --debit/--credit")
	cmd.Flags().StringArrayVar(&lineSpecs, "line", nil, "journal line ACCOUNT:debit|credit:AMOUNT[:memo], repeatable")

	return cmd
}

func buildDraft(date time.Time, desc, template, debitAcct, creditAcct, amountStr string, lineSpecs []string) (journal.Draft, error) {
	switch {
	case template != "":
		tpl, ok := journal.FindTemplate(template)
		if !ok {
			return journal.Draft{}, fmt.Errorf("unknown template %q (see: %s)", template, templateNames())
		}
		amount, err := parseAmount(amountStr)
		if err != nil {
			return journal.Draft{}, err
		}
		return tpl.Draft(date, desc, amount), nil

	case debitAcct != "" || creditAcct != "":
		if debitAcct == "" || creditAcct == "" {
			return journal.Draft{}, fmt.Errorf("--debit and --credit must be given together")
		}
		amount, err := parseAmount(amountStr)
		if err != nil {
			return journal.Draft{}, err
		}
		return journal.Draft{
			Date:        date,
			Description: desc,
			Lines: []model.Line{
				{AccountID: debitAcct, Debit: amount},
				{AccountID: creditAcct, Credit: amount},
			},
		}, nil

	case len(lineSpecs) > 0:
		lines := make([]model.Line, 0, len(lineSpecs))
		for _, spec := range lineSpecs {
			line, err := parseLineSpec(spec)
			if err != nil {
				return journal.Draft{}, err
			}
			lines = append(lines, line)
		}
		return journal.Draft{Date: date, Description: desc, Lines: lines}, nil

	default:
		return journal.Draft{}, fmt.Errorf("nothing to record: use --template, --debit/--credit, or --line")
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("--amount is required")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing --amount %q: %w", s, err)
	}
	return amount, nil
}

// parseLineSpec parses "ACCOUNT:debit|credit:AMOUNT[:memo]".
func parseLineSpec(spec string) (model.Line, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return model.Line{}, fmt.Errorf("invalid --line %q: want ACCOUNT:debit|credit:AMOUNT[:memo]", spec)
	}

	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return model.Line{}, fmt.Errorf("invalid amount in --line %q: %w", spec, err)
	}

	line := model.Line{AccountID: parts[0]}
	if len(parts) == 4 {
		line.Memo = parts[3]
	}

	switch strings.ToLower(parts[1]) {
	case "debit", "d":
		line.Debit = amount
	case "credit", "c":
		line.Credit = amount
	default:
		return model.Line{}, fmt.Errorf("invalid side %q in --line %q: want debit or credit", parts[1], spec)
	}
	return line, nil
}

func templateNames() string {
	var names []string
	for _, tpl := range journal.Templates() {
		names = append(names, tpl.Name)
	}
	return strings.Join(names, ", ")
}
