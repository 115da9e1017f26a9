package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/currency"
	"github.com/dji357a-gif/BANK1/internal/ledger"
)

func newDepositCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Manage time-locked deposits",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "open <amount>",
		Short: "Lock an amount away; it pays out principal plus 5% at maturity",
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
			dep, err := sess.engine.OpenDeposit(sess.username, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deposit opened: %s, matures at %s\n",
				currency.USD(dep.Principal), dep.MaturesAt.Format("15:04:05"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show open deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			deposits, err := sess.engine.DepositsOf(sess.username)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(deposits) == 0 {
				fmt.Fprintln(out, "(no open deposits)")
				return nil
			}
			now := sess.clk.Now()
			for i, dep := range deposits {
				left := dep.MaturesAt.Sub(now)
				if left < 0 {
					left = 0
				}
				fmt.Fprintf(out, "#%d: %s (%s left)\n", i+1, currency.USD(dep.Principal), left.Round(time.Second))
			}
			return nil
		},
	})

	return cmd
}

func newTradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Buy and sell assets on the simulated exchange",
	}

	run := func(side ledger.TradeSide) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			quantity, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			// One tick per command invocation, not one per symbol lookup.
			sess.market.Tick()
			res, err := sess.engine.TradeAsset(sess.username, args[0], quantity, side)
			if err != nil {
				return err
			}
			verb := "Bought"
			if side == ledger.Sell {
				verb = "Sold"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s at %s, total %s\n",
				verb, res.Quantity.String(), res.Symbol, currency.USD(res.Price), currency.USD(res.Total))
			return nil
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "buy <symbol> <quantity>",
		Short: "Buy an asset with USD",
		Args:  cobra.ExactArgs(2),
		RunE:  run(ledger.Buy),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "sell <symbol> <quantity>",
		Short: "Sell an asset holding back into USD",
		Args:  cobra.ExactArgs(2),
		RunE:  run(ledger.Sell),
	})

	return cmd
}

func newQuotesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quotes",
		Short: "Show live asset prices and your portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("user")
			sess, err := openSession(cmd, username != "")
			if err != nil {
				return err
			}
			sess.market.Tick()
			out := cmd.OutOrStdout()
			for _, q := range sess.market.Quotes() {
				fmt.Fprintf(out, "%-4s %s\n", q.Symbol, currency.USD(q.Price))
			}
			if username == "" {
				return nil
			}
			holdings, err := sess.engine.PortfolioOf(username)
			if err != nil {
				return err
			}
			if len(holdings) > 0 {
				fmt.Fprintln(out, "\nPortfolio:")
				for _, h := range holdings {
					fmt.Fprintf(out, "%-4s %s\n", h.Symbol, h.Quantity.String())
				}
			}
			return nil
		},
	}
}
