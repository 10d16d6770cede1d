package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "chconnect",
		Short:   "Track Companies House filing deadlines for a company portfolio",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newSaveCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newRefreshCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newDetailsCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}
