package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "List a day's entries, optionally filtered",
	Long: `Show the trade entries recorded for a day. The asset, side and
account filters combine; "all" (or omitting the flag) leaves a
dimension unconstrained. The printed index is the entry's position in
the full day list and is what "tradebook delete" expects.

Examples:
  tradebook day
  tradebook day 2024-03-15
  tradebook day 2024-03-15 --side Sell --account Live`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay,
}

var (
	dayAsset   string
	daySide    string
	dayAccount string
)

func init() {
	rootCmd.AddCommand(dayCmd)

	dayCmd.Flags().StringVar(&dayAsset, "asset", journal.All, "only entries for this asset")
	dayCmd.Flags().StringVar(&daySide, "side", journal.All, "only Buy or Sell entries")
	dayCmd.Flags().StringVar(&dayAccount, "account", journal.All, "only entries for this account")
}

func runDay(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	day := journal.DayKey(time.Now())
	if len(args) == 1 {
		if _, err := journal.ParseDay(args[0]); err != nil {
			return fmt.Errorf("day must be YYYY-MM-DD: %w", err)
		}
		day = args[0]
	}

	repo := journal.NewRepository(st)
	entries := repo.ReadOnlyEntriesFor(day)

	filter := journal.Filter{Asset: dayAsset, Side: daySide, Account: dayAccount}
	kept, indices := filter.Apply(entries, st.DefaultAccount())

	fmt.Printf("Day: %s\n", day)
	if assets := journal.Assets(entries); len(assets) > 0 {
		fmt.Printf("Assets: %s\n", strings.Join(assets, ", "))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSIDE\tASSET\tP/L\tACCOUNT\tOBS")
	for i, e := range kept {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			indices[i], e.Side, e.Asset, e.PL, e.EffectiveAccount(st.DefaultAccount()), e.Obs)
	}
	w.Flush()
	fmt.Println()

	dayTotal := journal.DayTotal(entries)
	if filter.Active() {
		fmt.Printf("Total (filtered): %s  |  Day: %s\n",
			journal.FormatTotal(journal.DayTotal(kept)), journal.FormatTotal(dayTotal))
	} else {
		fmt.Printf("Day total: %s\n", journal.FormatTotal(dayTotal))
	}
	return nil
}
