package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/chconnect-dev/chconnect/internal/audit"
	"github.com/chconnect-dev/chconnect/internal/config"
	"github.com/chconnect-dev/chconnect/internal/gitops"
	"github.com/chconnect-dev/chconnect/internal/portfolio"
	"github.com/chconnect-dev/chconnect/internal/registry"
	"github.com/chconnect-dev/chconnect/internal/session"
)

// cacheDir is the registry response cache inside the data directory.
const cacheDir = ".chconnect-cache"

// env bundles everything a command needs for one data directory. It is
// rebuilt per invocation; nothing is shared across commands.
type env struct {
	dataDir string
	cfg     *config.Config
	store   *portfolio.Store
	session *session.Store
	client  *registry.Client
}

// loadEnv resolves the data directory and wires up the store, session and
// registry client. A missing chconnect.yaml falls back to defaults so
// read-only commands work in a bare directory.
func loadEnv(dataDir string) (*env, error) {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	var opts []registry.Option
	if cfg.Registry.Cache {
		opts = append(opts, registry.WithDiskCache(filepath.Join(absDir, cacheDir)))
	}

	return &env{
		dataDir: absDir,
		cfg:     cfg,
		store:   portfolio.NewStore(filepath.Join(absDir, cfg.Portfolio.File)),
		session: session.NewStore(filepath.Join(absDir, session.FileName)),
		client:  registry.NewClient(cfg.Registry.BaseURL, cfg.Registry.APIKey, opts...),
	}, nil
}

// refreshPolicy returns the configured policy, validated.
func (e *env) refreshPolicy() (portfolio.RefreshPolicy, error) {
	return portfolio.ParseRefreshPolicy(e.cfg.Portfolio.RefreshPolicy)
}

// recordMutation audits a portfolio mutation and, when auto-commit is on,
// commits the data directory. Audit/commit failures are reported but the
// mutation itself has already succeeded.
func (e *env) recordMutation(action, crn, details string) error {
	hash := ""
	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.dataDir) {
		h, err := gitops.CommitPortfolio(e.dataDir, action+" "+details, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing data dir: %w", err)
		}
		hash = h
	}
	return audit.Append(e.dataDir, []audit.Entry{{
		Timestamp:  time.Now(),
		Action:     action,
		CRN:        crn,
		Details:    details,
		CommitHash: hash,
	}})
}
