package prompts

import (
	"errors"
	"strings"

	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/charmbracelet/huh"
)

// PromptInitCurrency asks for the display currency on first run.
func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Welcome to Mamar Bank! This is the first run, please set the default currency:").
		Description("The currency is only used to label amounts.").
		Options(
			huh.NewOption("BDT", "BDT"),
			huh.NewOption("USD", "USD"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("INR", "INR"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	if selection != "Other" {
		return selection, nil
	}

	var customInput string
	err = huh.NewInput().
		Title("Please enter the currency code:").
		Description("Please use the ISO 4217 standard 3-letter currency code.").
		Value(&customInput).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("currency code is required")
			}
			return validation.ValidateCurrency(s)
		}).
		Run()

	if err != nil {
		return "", err
	}

	return strings.ToUpper(strings.TrimSpace(customInput)), nil
}
