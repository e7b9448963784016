package account

import (
	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open accounts and look them up.",
		Long:  `Open customer accounts, list every account and show the details of one.`,
	}

	accountCmd.AddCommand(NewOpenCmd(a))
	accountCmd.AddCommand(NewListCmd(a))
	accountCmd.AddCommand(NewShowCmd(a))

	return accountCmd
}
