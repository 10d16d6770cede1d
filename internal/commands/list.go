package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/model"
	"github.com/chconnect-dev/chconnect/internal/render"
	"github.com/chconnect-dev/chconnect/internal/report"
)

func newListCommand() *cobra.Command {
	var dataDir string
	var filterChoice string
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the portfolio sorted by nearest CS01 deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, dataDir, filterChoice, plain)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")
	cmd.Flags().StringVar(&filterChoice, "filter", "all", "all, overdue, due7, due30 or ok")
	cmd.Flags().BoolVar(&plain, "plain", false, "print CSV instead of a styled table")

	return cmd
}

func runList(cmd *cobra.Command, dataDir, filterChoice string, plain bool) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	choice, err := model.ParseFilter(filterChoice)
	if err != nil {
		return err
	}

	records := e.store.LoadAll()
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No companies saved yet. Run `chconnect search <crn>` and `chconnect save` to add one.")
		return nil
	}

	today := time.Now()
	rows := report.SortByNearestCS(report.Project(report.Filter(records, choice, today), today))

	if plain {
		return report.WriteCSV(cmd.OutOrStdout(), rows)
	}

	// Summary tiles cover the whole portfolio, not just the filtered view.
	md, err := render.Summary(report.Summarize(records, today))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), render.ANSI(md))
		fmt.Fprintf(cmd.OutOrStdout(), "No companies match the %q filter.\n", choice)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), render.ANSI(md+"\n"+render.Table(rows)))
	return nil
}
