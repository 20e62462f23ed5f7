package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage the set of account names",
	Long: `List, add or remove account names. The default account is protected
and can never be removed. Removing an account leaves existing entries
untouched; they keep the removed name.

Examples:
  tradebook accounts list
  tradebook accounts add "Live"
  tradebook accounts remove "Paper"`,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register an account name",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsAdd,
}

var accountsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an account name",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsRemove,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsAddCmd)
	accountsCmd.AddCommand(accountsRemoveCmd)
}

func runAccountsList(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	for _, name := range journal.NewRegistry(st).Names() {
		if name == st.DefaultAccount() {
			fmt.Printf("%s (default)\n", name)
			continue
		}
		fmt.Println(name)
	}
	return nil
}

func runAccountsAdd(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	reg := journal.NewRegistry(st)
	before := len(reg.Names())
	if err := reg.Add(args[0]); err != nil {
		return err
	}
	if len(reg.Names()) == before {
		fmt.Printf("Account %q already registered\n", args[0])
		return nil
	}
	fmt.Printf("✓ Added account %q\n", args[0])
	return nil
}

func runAccountsRemove(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	if err := journal.NewRegistry(st).Remove(args[0]); err != nil {
		return fmt.Errorf("remove account: %w", err)
	}
	fmt.Printf("✓ Removed account %q\n", args[0])
	return nil
}
