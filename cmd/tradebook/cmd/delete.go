package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <YYYY-MM-DD> <index>",
	Short: "Delete a day's entry by its original index",
	Long: `Remove one entry from a day. The index is the entry's position in the
full, unfiltered day list, as printed by "tradebook day". An index that
no longer exists deletes nothing.

Example:
  tradebook delete 2024-03-15 1`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	day := args[0]
	if _, err := journal.ParseDay(day); err != nil {
		return fmt.Errorf("day must be YYYY-MM-DD: %w", err)
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("index must be a number: %w", err)
	}

	repo := journal.NewRepository(st)
	before := len(repo.ReadOnlyEntriesFor(day))
	if err := repo.DeleteAt(day, index); err != nil {
		return err
	}

	if before == len(repo.ReadOnlyEntriesFor(day)) {
		fmt.Printf("No entry #%d on %s, nothing deleted\n", index, day)
		return nil
	}
	fmt.Printf("✓ Deleted entry #%d on %s (%d remaining)\n", index, day, before-1)
	return nil
}
