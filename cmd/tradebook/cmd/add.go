package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade entry",
	Long: `Append a trade entry to a day. The profit/loss value accepts both
"," and "." as decimal separator.

Examples:
  tradebook add --side Buy --asset WINFUT --pl 125.50
  tradebook add --date 2024-03-15 --side Sell --asset PETR4 --pl -3,25 --obs "stopped out"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate    string
	addSide    string
	addAsset   string
	addPL      string
	addObs     string
	addAccount string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "day to record against (default today)")
	addCmd.Flags().StringVarP(&addSide, "side", "s", "", "Buy or Sell (required)")
	addCmd.Flags().StringVarP(&addAsset, "asset", "a", "", "asset symbol (required)")
	addCmd.Flags().StringVarP(&addPL, "pl", "p", "", "profit/loss amount (required)")
	addCmd.Flags().StringVarP(&addObs, "obs", "o", "", "optional note")
	addCmd.Flags().StringVar(&addAccount, "account", "", "account name (default the first registered account)")
	addCmd.MarkFlagRequired("side")
	addCmd.MarkFlagRequired("asset")
	addCmd.MarkFlagRequired("pl")
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	day := journal.DayKey(time.Now())
	if addDate != "" {
		if _, err := journal.ParseDay(addDate); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		day = addDate
	}

	side, err := journal.ParseSide(addSide)
	if err != nil {
		return err
	}

	pl, err := journal.ParseAmount(addPL)
	if err != nil {
		return fmt.Errorf("profit/loss: %w", err)
	}

	account := strings.TrimSpace(addAccount)
	if account == "" {
		account = journal.NewRegistry(st).Names()[0]
	}

	repo := journal.NewRepository(st)
	index := len(repo.ReadOnlyEntriesFor(day))

	entry := journal.Entry{
		Side:    side,
		Asset:   strings.TrimSpace(addAsset),
		PL:      journal.NewPL(pl),
		Obs:     strings.TrimSpace(addObs),
		Account: account,
	}
	if err := repo.Append(day, entry); err != nil {
		return err
	}

	fmt.Printf("✓ Recorded %s %s %s on %s (entry #%d, account %s)\n",
		entry.Side, entry.Asset, journal.FormatTotal(pl), day, index, account)
	return nil
}
