package prompts

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/shopspring/decimal"
)

// AccountOrPrompt looks up accountNo, asking the user to pick an account
// first when it is empty.
func AccountOrPrompt(ctx context.Context, svc *service.AccountService, accountNo, title string) (*model.Account, error) {
	if accountNo == "" {
		accounts, err := svc.ListAccounts(ctx)
		if err != nil {
			return nil, err
		}
		if accountNo, err = PromptAccount(accounts, title); err != nil {
			return nil, err
		}
	}
	return svc.GetAccountByNo(ctx, accountNo)
}

// AmountOrPrompt parses raw, asking for the amount first when it is empty.
func AmountOrPrompt(raw, operation, helpText string) (decimal.Decimal, error) {
	if raw == "" {
		return PromptOperationAmount(operation, helpText)
	}
	return utils.ParseAmount(raw)
}
