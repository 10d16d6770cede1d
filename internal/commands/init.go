package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chconnect-dev/chconnect/internal/config"
	"github.com/chconnect-dev/chconnect/internal/gitops"
	"github.com/chconnect-dev/chconnect/internal/portfolio"
)

func newInitCommand() *cobra.Command {
	var apiKey string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new portfolio data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, apiKey, useGit)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Companies House API key (or set CHCONNECT_API_KEY)")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and enable auto-commit")

	return cmd
}

func runInit(cmd *cobra.Command, dir, apiKey string, useGit bool) error {
	for _, d := range []string{"logs", "exports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write chconnect.yaml.
	cfg := config.Default()
	cfg.Registry.APIKey = apiKey
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty portfolio so the data file exists from day one.
	store := portfolio.NewStore(filepath.Join(dir, cfg.Portfolio.File))
	if err := store.SaveAll(nil); err != nil {
		return fmt.Errorf("writing portfolio: %w", err)
	}

	// Keep caches and the session slot out of version control.
	gitignore := cacheDir + "/\nexports/\nsession.json\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
		if _, err := gitops.CommitAll(dir, "chconnect: init data directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized portfolio data directory at %s\n", dir)
	return nil
}
