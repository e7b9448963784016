package loan

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/ui"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type payRunner struct {
	app       *app.App
	accountNo string
	yes       bool
}

func NewPayCmd(a *app.App) *cobra.Command {
	runner := &payRunner{app: a}

	cmd := &cobra.Command{
		Use:   "pay [loan-id]",
		Short: "Pay back an approved loan.",
		Long: `Debit the full loan amount from the account and mark the loan paid.

Example: mamar loan pay 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVarP(&runner.accountNo, "account", "a", "", "Account number, used to pick a loan when no ID is given")
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *payRunner) Run(ctx context.Context, args []string) error {
	svc := r.app.Service
	currency := r.app.Config.Defaults.Currency

	loanID, err := selectLoan(ctx, r.app, args, r.accountNo, (*model.Transaction).IsPayableLoan)
	if err != nil {
		return err
	}

	if !r.yes {
		loan, acc, err := svc.Transaction.GetLoan(ctx, loanID)
		if err != nil {
			return err
		}
		views.RenderLoanPaymentSummary(loan, acc, currency)

		confirm, err := ui.Confirm("Pay this loan now?", false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Payment cancelled")
			return nil
		}
	}

	res, err := svc.Transaction.PayLoan(ctx, loanID)
	if err != nil {
		return err
	}
	return views.RenderOperationResult(res, currency, r.app.Config.Location())
}
