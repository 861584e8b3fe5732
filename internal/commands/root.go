package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/senja-dev/senja/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "senja",
		Short:   "Double-entry bookkeeping for a small food business",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newDeleteCommand())
	rootCmd.AddCommand(newJournalCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
