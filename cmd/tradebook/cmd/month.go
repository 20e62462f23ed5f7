package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/calendar"
	"github.com/rustyeddy/tradebook/journal"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show a month of day totals as a calendar grid",
	Long: `Render the calendar for a month, coloring each day by its total:
green for gains, red for losses, neutral for flat days.

Examples:
  tradebook month
  tradebook month 2024-03`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("month must be YYYY-MM: %w", err)
		}
		year, month = t.Year(), t.Month()
	}

	repo := journal.NewRepository(st)
	total := func(day string) float64 {
		return journal.DayTotal(repo.ReadOnlyEntriesFor(day))
	}

	fmt.Print(calendar.Render(year, month, total, cfg.Display.Color))
	return nil
}
