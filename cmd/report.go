package cmd

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/spf13/cobra"
)

type reportRunner struct {
	app       *app.App
	accountNo string
	start     string
	end       string
}

func NewReportCmd(a *app.App) *cobra.Command {
	runner := &reportRunner{app: a}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the statement of an account",
		Long: `List the ledger entries of an account, optionally between two dates.
Both dates are inclusive and use the YYYY-MM-DD format. Without dates the
statement ends with the current balance, otherwise with the net change.

Example: mamar report -a 100001 --start 2024-01-01 --end 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&runner.accountNo, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&runner.start, "start", "s", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&runner.end, "end", "e", "", "Last day (YYYY-MM-DD)")

	return cmd
}

func (r *reportRunner) Run(ctx context.Context) error {
	svc := r.app.Service

	acc, err := prompts.AccountOrPrompt(ctx, svc.Account, r.accountNo, "Account:")
	if err != nil {
		return err
	}

	report, err := svc.Report.RangeFromStrings(ctx, acc.ID, r.start, r.end)
	if err != nil {
		return err
	}

	accounts, err := svc.Account.ListAccounts(ctx)
	if err != nil {
		return err
	}

	list := views.NewTransactionListView(r.app.Config.Defaults.Currency, r.app.Config.Location())
	list.AccountNos = make(map[int64]string, len(accounts))
	for _, a := range accounts {
		list.AccountNos[a.ID] = a.AccountNo
	}

	return views.RenderReport(report, list)
}
