package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/currency"
)

func newCreditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Manage your credit line",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "issue <amount>",
		Short: "Take a credit; repay principal plus 5% within the term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			debt, err := sess.engine.IssueCredit(sess.username, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Credit issued: %s. Repay %s within %s.\n",
				currency.USD(amount), currency.USD(debt), sess.engine.Terms().CreditTerm)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repay",
		Short: "Repay the whole debt from your USD balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			paid, err := sess.engine.RepayCredit(sess.username)
			if err != nil {
				return err
			}
			if paid.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "No active debt.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Debt repaid: %s\n", currency.USD(paid))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show current debt and due time",
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
			if !bal.CreditDebt.IsPositive() {
				fmt.Fprintln(out, "No active debt.")
				return nil
			}
			fmt.Fprintf(out, "Debt: %s, due at %s\n",
				currency.USD(bal.CreditDebt), bal.CreditDueAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	})

	return cmd
}
