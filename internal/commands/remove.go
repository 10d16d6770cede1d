package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/crn"
)

func newRemoveCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "remove <crn>",
		Short: "Remove a company from the portfolio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, dataDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runRemove(cmd *cobra.Command, dataDir, rawCRN string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	number := crn.Normalize(rawCRN)
	if err := crn.Validate(number); err != nil {
		return err
	}

	if !e.store.Exists(number) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not in the portfolio.\n", number)
		return nil
	}

	if err := e.store.Remove(number); err != nil {
		return err
	}
	if err := e.recordMutation("remove", number, "removed by user"); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s removed.\n", number)
	return nil
}
