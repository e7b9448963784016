package loan

import (
	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewRequestCmd(a *app.App) *cobra.Command {
	var accountNo, amount string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request a new loan.",
		Long: `Record a pending loan request. No money moves until the loan is approved
and paid. An account can hold a limited number of outstanding loans.

Example: mamar loan request -a 100001 -m 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			acc, err := prompts.AccountOrPrompt(ctx, a.Service.Account, accountNo, "Account:")
			if err != nil {
				return err
			}

			value, err := prompts.AmountOrPrompt(amount, "Loan", "")
			if err != nil {
				return err
			}

			res, err := a.Service.Transaction.RequestLoan(ctx, acc.ID, value)
			if err != nil {
				return err
			}

			if err := views.RenderOperationResult(res, a.Config.Defaults.Currency, a.Config.Location()); err != nil {
				return err
			}
			pterm.Info.Println("The loan is pending approval")
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountNo, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&amount, "amount", "m", "", "Loan amount")

	return cmd
}
