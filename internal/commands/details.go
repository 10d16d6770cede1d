package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/crn"
	"github.com/chconnect-dev/chconnect/internal/render"
)

const (
	maxOfficers = 5
	maxFilings  = 10
	maxCharges  = 5
)

func newDetailsCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "details <crn>",
		Short: "Show a rich details panel for a company",
		Long:  "Fetches the profile, top officers, recent filings and registered charges from Companies House and renders them as one panel.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetails(cmd, dataDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runDetails(cmd *cobra.Command, dataDir, rawCRN string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	number := crn.Normalize(rawCRN)
	if err := crn.Validate(number); err != nil {
		return err
	}

	ctx := cmd.Context()
	p, err := e.client.Profile(ctx, number)
	if err != nil {
		return fmt.Errorf("could not load details for %s: %w", number, err)
	}

	// The side panels are optional: a company without officers, filings or
	// charges data still gets its overview.
	data := render.DetailsData{CRN: number, Profile: *p}
	if officers, err := e.client.Officers(ctx, number); err == nil {
		data.Officers = truncate(officers.Items, maxOfficers)
	}
	if filings, err := e.client.FilingHistory(ctx, number, maxFilings); err == nil {
		data.Filings = truncate(filings.Items, maxFilings)
	}
	if charges, err := e.client.Charges(ctx, number); err == nil {
		data.Charges = truncate(charges.Items, maxCharges)
		data.ChargeCount = charges.TotalCount
		if data.ChargeCount == 0 {
			data.ChargeCount = len(charges.Items)
		}
	}

	md, err := render.Details(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.ANSI(md))
	return nil
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
