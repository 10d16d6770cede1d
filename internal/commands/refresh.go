package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/model"
	"github.com/chconnect-dev/chconnect/internal/portfolio"
)

func newRefreshCommand() *cobra.Command {
	var dataDir string
	var keepStale bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch every saved company from the registry",
		Long:  "Rebuilds the portfolio from fresh registry data. By default a company whose lookup fails is dropped; --keep-stale retains its previous record instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd, dataDir, keepStale)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")
	cmd.Flags().BoolVar(&keepStale, "keep-stale", false, "keep records whose registry lookup fails")

	return cmd
}

func runRefresh(cmd *cobra.Command, dataDir string, keepStale bool) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	policy, err := e.refreshPolicy()
	if err != nil {
		return err
	}
	if keepStale {
		policy = portfolio.KeepStale
	}

	before := len(e.store.LoadAll())
	fetch := func(number string) (model.Company, bool) {
		return e.client.FetchCompany(cmd.Context(), number)
	}
	count, err := e.store.RefreshAll(fetch, policy)
	if err != nil {
		return err
	}

	details := fmt.Sprintf("updated %d of %d companies", count, before)
	if err := e.recordMutation("refresh", "", details); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %d companies.\n", count)
	if dropped := before - len(e.store.LoadAll()); dropped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d companies could not be fetched and were dropped (use --keep-stale to retain them).\n", dropped)
	}
	return nil
}
