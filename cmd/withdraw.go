package cmd

import (
	"fmt"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/spf13/cobra"
)

func NewWithdrawCmd(a *app.App) *cobra.Command {
	runner := &operationRunner{app: a, label: "Withdrawal"}

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw money from an account",
		Long: `Debit an account with the given amount. The balance can never go negative.

Example: mamar withdraw -a 100001 -m 800`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.help = fmt.Sprintf("Between %d and %d", a.Config.Rules.MinWithdrawal, a.Config.Rules.MaxWithdrawal)
			return runner.Run(cmd.Context(), a.Service.Transaction.Withdraw)
		},
	}

	cmd.Flags().StringVarP(&runner.accountNo, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&runner.amount, "amount", "m", "", "Amount to withdraw")

	return cmd
}
