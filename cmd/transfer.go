package cmd

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transferRunner struct {
	app       *app.App
	accountNo string
	targetNo  string
	amount    string
	yes       bool
}

func NewTransferCmd(a *app.App) *cobra.Command {
	runner := &transferRunner{app: a}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer money to another account",
		Long: `Move money from one account to another in a single atomic step.
Both account owners are notified.

Example: mamar transfer -a 100001 --to 100002 -m 1500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&runner.accountNo, "account", "a", "", "Sender account number")
	cmd.Flags().StringVarP(&runner.targetNo, "to", "t", "", "Recipient account number")
	cmd.Flags().StringVarP(&runner.amount, "amount", "m", "", "Amount to transfer")
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *transferRunner) Run(ctx context.Context) error {
	svc := r.app.Service
	currency := r.app.Config.Defaults.Currency

	sender, err := prompts.AccountOrPrompt(ctx, svc.Account, r.accountNo, "Sender account:")
	if err != nil {
		return err
	}

	if r.targetNo == "" {
		accounts, err := svc.Account.ListAccounts(ctx)
		if err != nil {
			return err
		}
		if r.targetNo, err = prompts.PromptTargetAccount(accounts, sender.ID); err != nil {
			return err
		}
	}

	amount, err := prompts.AmountOrPrompt(r.amount, "Transfer", "")
	if err != nil {
		return err
	}

	if !r.yes {
		views.RenderTransferSummary(sender, r.targetNo, amount, currency)

		confirm, err := prompts.PromptConfirm("Proceed with the transfer?", true)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Transfer cancelled")
			return nil
		}
	}

	res, err := svc.Transaction.Transfer(ctx, sender.ID, amount, r.targetNo)
	if err != nil {
		return err
	}

	return views.RenderOperationResult(res, currency, r.app.Config.Location())
}
