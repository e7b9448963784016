package loan

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/spf13/cobra"
)

func NewLoanCmd(a *app.App) *cobra.Command {
	loanCmd := &cobra.Command{
		Use:   "loan",
		Short: "Request, approve, pay and list loans.",
		Long: `A loan starts as a pending request. Once approved by the bank it can be
paid back from the account balance.`,
	}

	loanCmd.AddCommand(NewRequestCmd(a))
	loanCmd.AddCommand(NewApproveCmd(a))
	loanCmd.AddCommand(NewPayCmd(a))
	loanCmd.AddCommand(NewListCmd(a))

	return loanCmd
}

// selectLoan resolves the loan id from args, or lets the user pick one of
// the account's loans accepted by keep.
func selectLoan(ctx context.Context, a *app.App, args []string, accountNo string, keep func(*model.Transaction) bool) (int64, error) {
	if len(args) == 1 {
		return parseLoanID(args[0])
	}

	acc, err := prompts.AccountOrPrompt(ctx, a.Service.Account, accountNo, "Account:")
	if err != nil {
		return 0, err
	}

	loans, err := a.Service.Transaction.ListLoans(ctx, acc.ID)
	if err != nil {
		return 0, err
	}

	var candidates []*model.Transaction
	for _, l := range loans {
		if keep(l) {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return 0, errNoLoans
	}

	return prompts.PromptLoan(candidates, a.Config.Defaults.Currency)
}
