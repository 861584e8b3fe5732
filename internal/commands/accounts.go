package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tID\tNAME\tTYPE")
			for _, a := range l.accounts.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Code, a.ID, a.Name, a.Type)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")

	return cmd
}
