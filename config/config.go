package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradebook/journal"
)

// Config represents the complete tradebook configuration
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// JournalConfig locates the ledger file and names the protected account
type JournalConfig struct {
	File           string `json:"file" yaml:"file"`
	DefaultAccount string `json:"default_account" yaml:"default_account"`
}

// DisplayConfig contains terminal rendering options
type DisplayConfig struct {
	Color bool `json:"color" yaml:"color"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.File == "" {
		return fmt.Errorf("journal.file is required")
	}
	if c.Journal.DefaultAccount == "" {
		return fmt.Errorf("journal.default_account is required")
	}
	if strings.TrimSpace(c.Journal.DefaultAccount) != c.Journal.DefaultAccount {
		return fmt.Errorf("journal.default_account must not have surrounding whitespace")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			File:           "./tradebook.json",
			DefaultAccount: journal.DefaultAccount,
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}
