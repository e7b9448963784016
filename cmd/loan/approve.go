package loan

import (
	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewApproveCmd(a *app.App) *cobra.Command {
	var accountNo string

	cmd := &cobra.Command{
		Use:   "approve [loan-id]",
		Short: "Approve a pending loan (bank staff).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loanID, err := selectLoan(ctx, a, args, accountNo, (*model.Transaction).IsPendingLoan)
			if err != nil {
				return err
			}

			res, err := a.Service.Transaction.ApproveLoan(ctx, loanID)
			if err != nil {
				return err
			}
			return views.RenderOperationResult(res, a.Config.Defaults.Currency, a.Config.Location())
		},
	}

	cmd.Flags().StringVarP(&accountNo, "account", "a", "", "Account number, used to pick a loan when no ID is given")

	return cmd
}
