package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/audit"
)

func newLogCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the portfolio mutation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runLog(cmd *cobra.Command, dataDir string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	entries, err := audit.Read(e.dataDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No portfolio changes recorded yet.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-8s", entry.Timestamp.Format(time.RFC3339), entry.Action)
		if entry.CRN != "" {
			line += "  " + entry.CRN
		}
		if entry.Details != "" {
			line += "  " + entry.Details
		}
		if entry.CommitHash != "" {
			line += "  (" + entry.CommitHash + ")"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
