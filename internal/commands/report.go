package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/senja-dev/senja/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Derive accounting reports",
	}
	reportCmd.AddCommand(newTrialCommand())
	reportCmd.AddCommand(newLedgerCommand())
	reportCmd.AddCommand(newBalanceSheetCommand())
	reportCmd.AddCommand(newIncomeCommand())
	return reportCmd
}

func newTrialCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			tb, err := report.Trial(l.accounts, l.journal.Transactions())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tTYPE\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Code, row.Name, row.Type, l.amount(row.Debit), l.amount(row.Credit))
			}
			fmt.Fprintf(w, "\tTOTAL\t\t%s\t%s\n", l.amount(tb.TotalDebit), l.amount(tb.TotalCredit))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")
	return cmd
}

func newLedgerCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "ledger <account-id>",
		Short: "Per-account ledger with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			lg, err := report.AccountLedger(l.accounts, l.journal.Transactions(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s - %s\n", lg.Account.Code, lg.Account.Name)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tENTRY\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE")
			for _, row := range lg.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					row.Date.Format(dateFlagFormat), row.EntryID, row.Description,
					l.amount(row.Debit), l.amount(row.Credit), l.amount(row.Balance))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Balance: %s %s\n", l.amount(lg.Balance), l.cfg.Currency.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")
	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			bs, err := report.Sheet(l.accounts, l.journal.Transactions())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			section := func(title string, lines []report.SheetLine) {
				fmt.Fprintf(w, "%s\t\n", title)
				for _, line := range lines {
					fmt.Fprintf(w, "  %s\t%s\n", line.Name, l.amount(line.Amount))
				}
			}
			section("ASSETS", bs.Assets)
			fmt.Fprintf(w, "  Total assets\t%s\n", l.amount(bs.TotalAssets))
			section("LIABILITIES", bs.Liabilities)
			fmt.Fprintf(w, "  Total liabilities\t%s\n", l.amount(bs.TotalLiabilities))
			section("EQUITY", bs.Equity)
			fmt.Fprintf(w, "  Total equity\t%s\n", l.amount(bs.TotalEquity))
			fmt.Fprintf(w, "TOTAL LIABILITIES + EQUITY\t%s\n", l.amount(bs.TotalLiabilities.Add(bs.TotalEquity)))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")
	return cmd
}

func newIncomeCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			is, err := report.Income(l.accounts, l.journal.Transactions())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REVENUE\t")
			for _, line := range is.Revenue {
				fmt.Fprintf(w, "  %s\t%s\n", line.Name, l.amount(line.Amount))
			}
			fmt.Fprintf(w, "  Total revenue\t%s\n", l.amount(is.TotalRevenue))
			fmt.Fprintln(w, "EXPENSES\t")
			for _, line := range is.Expenses {
				fmt.Fprintf(w, "  %s\t%s\n", line.Name, l.amount(line.Amount))
			}
			fmt.Fprintf(w, "  Total expenses\t%s\n", l.amount(is.TotalExpense))
			fmt.Fprintf(w, "NET INCOME\t%s\n", l.amount(is.NetIncome))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")
	return cmd
}
