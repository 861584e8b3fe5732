package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/senja-dev/senja/internal/importer"
)

func newImportCommand() *cobra.Command {
	var repoDir string
	var format string
	var revenueAcct string
	var expenseAcct string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statement CSVs from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			targets := importer.TargetAccounts{
				Cash:    l.cfg.Accounts.Cash,
				Revenue: l.cfg.Accounts.DefaultRevenue,
				Expense: l.cfg.Accounts.DefaultExpense,
			}
			if revenueAcct != "" {
				targets.Revenue = revenueAcct
			}
			if expenseAcct != "" {
				targets.Expense = expenseAcct
			}

			files, err := importer.Scan(l.root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("Nothing to import")
				return nil
			}

			for _, file := range files {
				n, err := importFile(l, parser, file, targets)
				if err != nil {
					return fmt.Errorf("importing %s: %w", file.Name, err)
				}
				if err := importer.MarkProcessed(l.root, file.Name); err != nil {
					return err
				}
				fmt.Printf("Imported %s (%d entries)\n", file.Name, n)
			}

			return l.snapshot("journal: import bank statements")
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")
	cmd.Flags().StringVar(&revenueAcct, "revenue", "", "revenue account for money in (default from config)")
	cmd.Flags().StringVar(&expenseAcct, "expense", "", "expense account for money out (default from config)")

	return cmd
}

func importFile(l *ledger, parser importer.Parser, file importer.FileInfo, targets importer.TargetAccounts) (int, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, draft := range importer.Drafts(txns, targets) {
		if _, err := l.journal.Add(draft); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
