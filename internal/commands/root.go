package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "solidbank",
		Short:   "File-backed bank ledger simulator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "bank.yaml", "path to bank.yaml")
	rootCmd.PersistentFlags().String("user", "", "account username")
	rootCmd.PersistentFlags().String("password", "", "account password")

	rootCmd.AddCommand(newRegisterCommand())
	rootCmd.AddCommand(newCardCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newTransferCommand())
	rootCmd.AddCommand(newExchangeCommand())
	rootCmd.AddCommand(newCreditCommand())
	rootCmd.AddCommand(newDepositCommand())
	rootCmd.AddCommand(newTradeCommand())
	rootCmd.AddCommand(newQuotesCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}
