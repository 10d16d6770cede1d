package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-add companies from a CSV of registration numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, dataDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runImport(cmd *cobra.Command, dataDir, file string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	crns, err := importer.ReadFile(file)
	if err != nil {
		return err
	}

	added, skipped, failed := 0, 0, 0
	for _, number := range crns {
		if e.store.Exists(number) {
			skipped++
			continue
		}
		record, ok := e.client.FetchCompany(cmd.Context(), number)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Could not fetch %s, skipping.\n", number)
			failed++
			continue
		}
		wasAdded, err := e.store.Add(record)
		if err != nil {
			return err
		}
		if wasAdded {
			added++
		} else {
			skipped++
		}
	}

	if added > 0 {
		details := fmt.Sprintf("imported %d companies from %s", added, file)
		if err := e.recordMutation("import", "", details); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d companies (%d already saved, %d failed).\n", added, skipped, failed)
	return nil
}
