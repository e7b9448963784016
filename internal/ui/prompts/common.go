package prompts

import (
	"strings"

	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// PromptAmount prompts for a money amount and parses it. Commas are
// accepted as thousands separators.
func PromptAmount(message string, helpText string, validator func(string) error) (decimal.Decimal, error) {
	var raw string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder("0.00").
		Value(&raw)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(strings.TrimSpace(raw))
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptDate prompts for an optional date in YYYY-MM-DD format
func PromptDate(message string, defaultDate string, helpText string, validator func(string) error) (string, error) {
	var date string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
