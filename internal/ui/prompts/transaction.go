package prompts

import (
	"fmt"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// PromptOperationAmount prompts for the amount of a deposit, withdrawal,
// loan or transfer
func PromptOperationAmount(operation string, helpText string) (decimal.Decimal, error) {
	return PromptAmount(
		fmt.Sprintf("%s amount:", operation),
		helpText,
		func(s string) error { return validation.ValidateAmountInput(s) },
	)
}

// PromptTargetAccount prompts for the transfer recipient among known
// accounts, excluding the sender
func PromptTargetAccount(accounts []*model.Account, senderID int64) (string, error) {
	var options []huh.Option[string]
	for _, acc := range accounts {
		if acc.ID == senderID {
			continue
		}
		label := fmt.Sprintf("%s  %s", acc.AccountNo, acc.OwnerRef)
		options = append(options, huh.NewOption(label, acc.AccountNo))
	}

	if len(options) == 0 {
		return PromptInput("Recipient account number:", "", nil)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Recipient account:").
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptLoan prompts for one of the given loans
func PromptLoan(loans []*model.Transaction, currency string) (int64, error) {
	var options []huh.Option[int64]
	for _, l := range loans {
		state := "pending"
		if l.LoanApproved {
			state = "approved"
		}
		label := fmt.Sprintf("#%d  %s  %s", l.ID, utils.FormatMoney(l.Amount, currency), state)
		options = append(options, huh.NewOption(label, l.ID))
	}

	var selected int64
	err := huh.NewSelect[int64]().
		Title("Loan:").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptAccount prompts for one of the given accounts and returns its number
func PromptAccount(accounts []*model.Account, title string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts yet, open one with 'mamar account open'")
	}

	var options []huh.Option[string]
	for _, acc := range accounts {
		label := fmt.Sprintf("%s  %s", acc.AccountNo, acc.OwnerRef)
		options = append(options, huh.NewOption(label, acc.AccountNo))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}
