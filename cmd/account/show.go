package account

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	app *app.App
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [account-no]",
		Short: "Show one account with its outstanding loans.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountNo := ""
			if len(args) == 1 {
				accountNo = args[0]
			}
			runner := &showRunner{app: a}
			return runner.Run(cmd.Context(), accountNo)
		},
	}
}

func (r *showRunner) Run(ctx context.Context, accountNo string) error {
	svc := r.app.Service
	currency := r.app.Config.Defaults.Currency

	acc, err := prompts.AccountOrPrompt(ctx, svc.Account, accountNo, "Account:")
	if err != nil {
		return err
	}

	ui.PrintL1Title("Account %s", acc.AccountNo)
	if err := views.RenderAccountSummary(acc, currency); err != nil {
		return err
	}

	loans, err := svc.Transaction.ListLoans(ctx, acc.ID)
	if err != nil {
		return err
	}

	return views.RenderLoans(loans, currency, r.app.Config.Location())
}
