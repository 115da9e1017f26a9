package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/currency"
	"github.com/dji357a-gif/BANK1/internal/ledger"
)

func newTransferCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <recipient-card> <amount>",
		Short: "Send USD to another account's card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			recipient, err := sess.engine.Transfer(sess.username, args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %s\n", currency.USD(amount), recipient)
			return nil
		},
	}
}

func newExchangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <usd-to-uah|uah-to-usd> <amount>",
		Short: "Convert between USD and UAH at the fixed rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir ledger.ExchangeDirection
			switch args[0] {
			case "usd-to-uah":
				dir = ledger.SellUSDBuyUAH
			case "uah-to-usd":
				dir = ledger.SellUAHBuyUSD
			default:
				return fmt.Errorf("unknown direction %q (want usd-to-uah or uah-to-usd)", args[0])
			}
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			received, err := sess.engine.Exchange(sess.username, dir, amount)
			if err != nil {
				return err
			}
			if dir == ledger.SellUSDBuyUAH {
				fmt.Fprintf(cmd.OutOrStdout(), "Received %s\n", currency.UAH(received))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Received %s\n", currency.USD(received))
			}
			return nil
		},
	}
}
