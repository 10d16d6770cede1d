package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/render"
	"github.com/chconnect-dev/chconnect/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show portfolio-wide deadline counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runSummary(cmd *cobra.Command, dataDir string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	md, err := render.Summary(report.Summarize(e.store.LoadAll(), time.Now()))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.ANSI(md))
	return nil
}
