package cmd

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/shopspring/decimal"
)

type operationFunc func(ctx context.Context, accountID int64, amount decimal.Decimal) (*service.Result, error)

// operationRunner drives the single-account balance operations.
type operationRunner struct {
	app       *app.App
	label     string
	help      string
	accountNo string
	amount    string
}

func (r *operationRunner) Run(ctx context.Context, op operationFunc) error {
	acc, err := prompts.AccountOrPrompt(ctx, r.app.Service.Account, r.accountNo, "Account:")
	if err != nil {
		return err
	}

	amount, err := prompts.AmountOrPrompt(r.amount, r.label, r.help)
	if err != nil {
		return err
	}

	res, err := op(ctx, acc.ID, amount)
	if err != nil {
		return err
	}

	return views.RenderOperationResult(res, r.app.Config.Defaults.Currency, r.app.Config.Location())
}
