package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/currency"
)

func newCardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "card",
		Short: "Show your card details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			card, err := sess.engine.CardOf(sess.username)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Card:   %s\n", card.Display)
			fmt.Fprintf(out, "CVV:    %s\n", card.CVV)
			fmt.Fprintf(out, "Expiry: %s\n", card.Expiry)
			return nil
		},
	}
}

func newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show balances and credit debt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			bal, err := sess.engine.BalanceOf(sess.username)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "USD: %s\n", currency.USD(bal.USD))
			fmt.Fprintf(out, "UAH: %s\n", currency.UAH(bal.UAH))
			if bal.CreditDebt.IsPositive() {
				fmt.Fprintf(out, "DEBT: %s (due %s)\n",
					currency.USD(bal.CreditDebt), bal.CreditDueAt.Format("15:04:05"))
			}
			return nil
		},
	}
}

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent transactions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			entries, err := sess.engine.History(sess.username, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "(no transactions)")
				return nil
			}
			for i, e := range entries {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to show")

	return cmd
}
