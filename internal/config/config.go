package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level senja.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Currency CurrencyConfig `yaml:"currency"`
	Accounts AccountsConfig `yaml:"accounts"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// CurrencyConfig sets the display currency and its smallest unit. Entry
// totals are compared after rounding to Decimals places.
type CurrencyConfig struct {
	Code     string `yaml:"code"`
	Decimals int32  `yaml:"decimals"`
}

// AccountsConfig names the chart accounts used by templates and the bank
// importer.
type AccountsConfig struct {
	Cash           string `yaml:"cash"`
	DefaultRevenue string `yaml:"default_revenue"`
	DefaultExpense string `yaml:"default_expense"`
}

// GitConfig controls git snapshots of the data files.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a senja.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
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

// Default returns a Config with sensible defaults for a new project. IDR
// has no minor unit, so amounts round to whole rupiah.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Currency: CurrencyConfig{
			Code:     "IDR",
			Decimals: 0,
		},
		Accounts: AccountsConfig{
			Cash:           "A101",
			DefaultRevenue: "R401",
			DefaultExpense: "X507",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Senja",
			AuthorEmail: "bot@senja.dev",
		},
	}
}
