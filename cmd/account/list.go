package account

import (
	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := a.Service.Account.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			return views.NewAccountListView(a.Config.Defaults.Currency).Render(accounts)
		},
	}
}
