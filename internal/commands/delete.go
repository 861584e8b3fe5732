package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a whole journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLedger(repoDir)
			if err != nil {
				return err
			}

			if err := l.journal.Delete(args[0]); err != nil {
				return err
			}

			if err := l.snapshot("journal: delete " + args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "ledger directory")

	return cmd
}
