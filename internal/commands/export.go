package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/model"
	"github.com/chconnect-dev/chconnect/internal/report"
)

func newExportCommand() *cobra.Command {
	var dataDir string
	var filterChoice string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the portfolio table as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, dataDir, filterChoice, out)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")
	cmd.Flags().StringVar(&filterChoice, "filter", "all", "all, overdue, due7, due30 or ok")
	cmd.Flags().StringVar(&out, "out", "", "output file (default exports/portfolio.csv, \"-\" for stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, dataDir, filterChoice, out string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	choice, err := model.ParseFilter(filterChoice)
	if err != nil {
		return err
	}

	today := time.Now()
	records := report.Filter(e.store.LoadAll(), choice, today)
	rows := report.SortByNearestCS(report.Project(records, today))

	if out == "-" {
		return report.WriteCSV(cmd.OutOrStdout(), rows)
	}
	if out == "" {
		out = filepath.Join(e.dataDir, "exports", "portfolio.csv")
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d companies to %s\n", len(rows), out)
	return nil
}
