package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/crn"
	"github.com/chconnect-dev/chconnect/internal/model"
)

func newSaveCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "save [crn]",
		Short: "Save a company to the portfolio",
		Long:  "Without arguments, saves the company from the last `chconnect search`. With a CRN, fetches and saves that company directly.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := ""
			if len(args) > 0 {
				number = args[0]
			}
			return runSave(cmd, dataDir, number)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runSave(cmd *cobra.Command, dataDir, rawCRN string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	var record model.Company
	switch {
	case rawCRN != "":
		number := crn.Normalize(rawCRN)
		if err := crn.Validate(number); err != nil {
			return err
		}
		// Reuse the last search when it matches, otherwise fetch fresh.
		if entry, ok := e.session.Load(); ok && entry.Company.CRN == number {
			record = entry.Company
		} else {
			rec, ok := e.client.FetchCompany(cmd.Context(), number)
			if !ok {
				return fmt.Errorf("could not fetch company %s from the registry", number)
			}
			record = rec
		}
	default:
		entry, ok := e.session.Load()
		if !ok {
			return fmt.Errorf("no company searched yet: run `chconnect search <crn>` first or pass a CRN")
		}
		record = entry.Company
	}

	added, err := e.store.Add(record)
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is already saved.\n", record.Name, record.CRN)
		return nil
	}

	if err := e.recordMutation("save", record.CRN, record.Name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) saved to your portfolio.\n", record.Name, record.CRN)
	return nil
}
