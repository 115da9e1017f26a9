package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dji357a-gif/BANK1/internal/currency"
)

func newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account with a freshly issued card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			username, _ := cmd.Flags().GetString("user")
			password, _ := cmd.Flags().GetString("password")

			a, err := sess.engine.Register(username, password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account %q created\n", a.Username)
			fmt.Fprintf(out, "Card:    %s\n", a.CardDisplay())
			fmt.Fprintf(out, "CVV:     %s\n", a.CVV)
			fmt.Fprintf(out, "Expiry:  %s\n", a.ExpiryDisplay())
			fmt.Fprintf(out, "Balance: %s\n", currency.USD(a.USD))
			return nil
		},
	}
}
