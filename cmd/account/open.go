package account

import (
	"context"
	"fmt"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/spf13/cobra"
)

// AccountOpener manages the state for opening an account
type AccountOpener struct {
	app   *app.App
	input validation.OpenAccountInput
}

func NewOpenCmd(a *app.App) *cobra.Command {
	opener := &AccountOpener{app: a}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account.",
		Long: `Open a customer account. The account number is generated and the
starting balance is zero.

Account types: SAVINGS, CURRENT. Gender (optional): MALE, FEMALE, OTHER.

Example: mamar account open -o alice@example.com -t SAVINGS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("owner") {
				return opener.FlagsMode(cmd.Context())
			}
			return opener.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&opener.input.OwnerRef, "owner", "o", "", "Owner reference (email or customer id)")
	cmd.Flags().StringVarP(&opener.input.Type, "type", "t", "SAVINGS", "Account type: SAVINGS or CURRENT")
	cmd.Flags().StringVarP(&opener.input.Gender, "gender", "g", "", "Owner gender (optional)")
	cmd.Flags().StringVarP(&opener.input.BirthDate, "birth-date", "b", "", "Owner birth date, YYYY-MM-DD (optional)")

	return cmd
}

// FlagsMode opens the account straight from command-line flags
func (ao *AccountOpener) FlagsMode(ctx context.Context) error {
	acc, err := ao.Save(ctx)
	if err != nil {
		return err
	}

	if err := views.RenderAccountSummary(acc, ao.app.Config.Defaults.Currency); err != nil {
		return err
	}
	return views.RenderAccountSuccess(acc)
}

// InteractiveMode collects the account details through prompts
func (ao *AccountOpener) InteractiveMode(ctx context.Context) error {
	var err error

	// Step 1: Owner
	if ao.input.OwnerRef, err = prompts.PromptOwner(); err != nil {
		return err
	}

	// Step 2: Account type
	if ao.input.Type, err = prompts.PromptAccountType(); err != nil {
		return err
	}

	// Step 3: Optional personal details
	if ao.input.Gender, err = prompts.PromptGender(); err != nil {
		return err
	}
	if ao.input.BirthDate, err = prompts.PromptBirthDate(); err != nil {
		return err
	}

	ao.displaySummary()

	confirm, err := prompts.PromptConfirm("Proceed with opening the account?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account opening cancelled")
	}

	acc, err := ao.Save(ctx)
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(acc)
}

// Save validates the collected details and persists the account
func (ao *AccountOpener) Save(ctx context.Context) (*model.Account, error) {
	return ao.app.Service.Account.OpenAccount(ctx, ao.input)
}

func (ao *AccountOpener) displaySummary() {
	preview := &model.Account{
		AccountNo:  "(assigned on save)",
		OwnerRef:   ao.input.OwnerRef,
		Type:       ao.input.Type,
		Gender:     ao.input.Gender,
		OpenedDate: time.Now().In(ao.app.Config.Location()),
	}
	_ = views.RenderAccountSummary(preview, ao.app.Config.Defaults.Currency)
}
