package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/senja-dev/senja/internal/model"
)

func newJournalCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List journal entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tDEBIT\tAMOUNT\tCREDIT\tAMOUNT")
			for _, tx := range l.journal.Transactions() {
				debit, credit := compactLines(tx)
				more := ""
				if len(tx.Lines) > 2 {
					more = " ..."
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s%s\n",
					tx.ID,
					tx.Date.Format(dateFlagFormat),
					tx.Description,
					accountName(l, debit.AccountID),
					l.amount(debit.Debit),
					accountName(l, credit.AccountID),
					l.amount(credit.Credit),
					more,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")

	return cmd
}

// compactLines picks the first debit and first credit line for the one-row
// listing; remaining lines are elided with "...". This is display-only, the
// stored entry keeps every line.
func compactLines(tx model.Transaction) (debit, credit model.Line) {
	debit = tx.Lines[0]
	credit = tx.Lines[len(tx.Lines)-1]
	for _, line := range tx.Lines {
		if line.Debit.IsPositive() {
			debit = line
			break
		}
	}
	for _, line := range tx.Lines {
		if line.Credit.IsPositive() {
			credit = line
			break
		}
	}
	return debit, credit
}

func accountName(l *ledger, accountID string) string {
	if a, ok := l.accounts.FindByID(accountID); ok {
		return a.Name
	}
	return accountID
}
