package prompts

import (
	"fmt"
	"strings"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
)

// PromptOwner prompts for the account owner reference
func PromptOwner() (string, error) {
	return PromptInput("Owner (email or customer id):", "", func(s string) error {
		return validation.ValidateOwnerRef(s)
	})
}

// PromptAccountType prompts for account type selection
func PromptAccountType() (string, error) {
	options := []string{
		constants.AccountTypeSavings,
		constants.AccountTypeCurrent,
	}

	selected, err := PromptSelect("Account Type:", options, constants.AccountTypeSavings)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptGender prompts for the owner's gender, "Skip" leaves it empty
func PromptGender() (string, error) {
	options := []string{
		constants.GenderMale,
		constants.GenderFemale,
		constants.GenderOther,
		"Skip",
	}

	selected, err := PromptSelect("Gender:", options, "Skip")
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	if selected == "Skip" {
		return "", nil
	}
	return selected, nil
}

// PromptBirthDate prompts for an optional birth date
func PromptBirthDate() (string, error) {
	date, err := PromptDate(
		"Birth Date (YYYY-MM-DD):",
		"",
		"Press Enter to skip",
		func(s string) error { return validation.ValidateBirthDate(s) },
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(date), nil
}
