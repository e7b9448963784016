package loan

import (
	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(a *app.App) *cobra.Command {
	var accountNo string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the outstanding loans of an account.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			acc, err := prompts.AccountOrPrompt(ctx, a.Service.Account, accountNo, "Account:")
			if err != nil {
				return err
			}

			loans, err := a.Service.Transaction.ListLoans(ctx, acc.ID)
			if err != nil {
				return err
			}
			return views.RenderLoans(loans, a.Config.Defaults.Currency, a.Config.Location())
		},
	}

	cmd.Flags().StringVarP(&accountNo, "account", "a", "", "Account number")

	return cmd
}
