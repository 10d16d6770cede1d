package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the data directory.
const FileName = "chconnect.yaml"

// APIKeyEnv overrides the configured registry API key when set.
const APIKeyEnv = "CHCONNECT_API_KEY"

// Config represents the top-level chconnect.yaml configuration.
type Config struct {
	Registry  RegistryConfig  `yaml:"registry"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Git       GitConfig       `yaml:"git"`
}

// RegistryConfig points at the Companies House API.
type RegistryConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key,omitempty"`
	Cache   bool   `yaml:"cache"`
}

// PortfolioConfig controls the saved-company collection.
type PortfolioConfig struct {
	File          string `yaml:"file"`
	RefreshPolicy string `yaml:"refresh_policy"` // "drop" or "keep-stale"
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a chconnect.yaml file from disk. The CHCONNECT_API_KEY
// environment variable, when set, takes precedence over the stored key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Registry.APIKey = key
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			BaseURL: "https://api.company-information.service.gov.uk",
			Cache:   true,
		},
		Portfolio: PortfolioConfig{
			File:          "companies.json",
			RefreshPolicy: "drop",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "CH-Connect",
			AuthorEmail: "bot@chconnect.dev",
		},
	}
}
