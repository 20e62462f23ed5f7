package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A calendar-based journal of daily trading results",
	Long: `Tradebook records individual trade results against calendar days and
aggregates them into per-day and filtered totals.

It provides commands for:
  - Browsing a month of day totals as a calendar grid
  - Inspecting a day's entries with asset/side/account filters
  - Recording and deleting trade entries
  - Managing the set of account names

All data lives in a single JSON file that is replaced atomically on
every change.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath  string
	filePath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./tradebook.yaml, or $TRADEBOOK_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "journal file (overrides config, or $TRADEBOOK_FILE)")
}

// loadConfig resolves the active configuration. A missing default config
// file is not an error; defaults apply.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = os.Getenv("TRADEBOOK_CONFIG")
	}
	if path == "" {
		path = "./tradebook.yaml"
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.LoadFromFile(path)
}

// openStore loads configuration and ledger for commands that touch data.
func openStore() (*journal.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	file := filePath
	if file == "" {
		file = os.Getenv("TRADEBOOK_FILE")
	}
	if file == "" {
		file = cfg.Journal.File
	}

	return journal.Open(file, cfg.Journal.DefaultAccount), cfg, nil
}
