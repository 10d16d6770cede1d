package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/crn"
	"github.com/chconnect-dev/chconnect/internal/registry"
	"github.com/chconnect-dev/chconnect/internal/render"
	"github.com/chconnect-dev/chconnect/internal/session"
)

func newSearchCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "search <crn>",
		Short: "Look up a company by registration number",
		Long:  "Fetches the company profile from Companies House, shows its filing deadlines, and remembers it so a following `chconnect save` needs no arguments.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, dataDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "portfolio data directory")

	return cmd
}

func runSearch(cmd *cobra.Command, dataDir, rawCRN string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	number := crn.Normalize(rawCRN)
	if err := crn.Validate(number); err != nil {
		return err
	}

	p, err := e.client.Profile(cmd.Context(), number)
	if err != nil {
		// Clear the slot so a stale result cannot be saved by mistake.
		if cerr := e.session.Clear(); cerr != nil {
			return cerr
		}
		return fmt.Errorf("looking up %s: %w", number, err)
	}

	now := time.Now()
	md, err := render.Search(number, *p, now)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.ANSI(md))

	if err := e.session.Save(session.Entry{
		Company: registry.MapProfile(number, p, now),
		Profile: *p,
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Run `chconnect save` to add %s to your portfolio.\n", p.CompanyName)
	return nil
}
