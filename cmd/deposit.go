package cmd

import (
	"fmt"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/spf13/cobra"
)

func NewDepositCmd(a *app.App) *cobra.Command {
	runner := &operationRunner{app: a, label: "Deposit"}

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit money into an account",
		Long: `Credit an account with the given amount.

Example: mamar deposit -a 100001 -m 2500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.help = fmt.Sprintf("Minimum %d", a.Config.Rules.MinDeposit)
			return runner.Run(cmd.Context(), a.Service.Transaction.Deposit)
		},
	}

	cmd.Flags().StringVarP(&runner.accountNo, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&runner.amount, "amount", "m", "", "Amount to deposit")

	return cmd
}
