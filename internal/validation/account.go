package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/shopspring/decimal"
)

// OpenAccountInput is the raw onboarding data for a new account.
type OpenAccountInput struct {
	OwnerRef  string
	Type      string
	Gender    string
	BirthDate string
}

// ValidateOpenAccount normalizes the input in place and checks every field.
func ValidateOpenAccount(in *OpenAccountInput) error {
	in.OwnerRef = strings.TrimSpace(in.OwnerRef)
	in.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	in.Gender = strings.ToUpper(strings.TrimSpace(in.Gender))
	in.BirthDate = strings.TrimSpace(in.BirthDate)

	if err := ValidateOwnerRef(in.OwnerRef); err != nil {
		return violation(CodeInvalidAccount, "%s", err.Error())
	}
	if err := ValidateAccountType(in.Type); err != nil {
		return violation(CodeInvalidAccount, "%s", err.Error())
	}
	if err := ValidateGender(in.Gender); err != nil {
		return violation(CodeInvalidAccount, "%s", err.Error())
	}
	if err := ValidateBirthDate(in.BirthDate); err != nil {
		return violation(CodeInvalidAccount, "%s", err.Error())
	}
	return nil
}

// ValidateOwnerRef validates the account owner reference.
// Accepts any for survey and huh compatibility.
func ValidateOwnerRef(val any) error {
	owner, ok := val.(string)
	if !ok {
		return fmt.Errorf("owner must be a string")
	}

	owner = strings.TrimSpace(owner)
	if owner == "" {
		return fmt.Errorf("owner can't be empty")
	}
	if len(owner) > constants.MaxOwnerLen {
		return fmt.Errorf("owner too long (max %d characters)", constants.MaxOwnerLen)
	}
	return nil
}

func ValidateAccountType(val any) error {
	t, ok := val.(string)
	if !ok {
		return fmt.Errorf("account type must be a string")
	}
	if !constants.AccountTypes[strings.ToUpper(strings.TrimSpace(t))] {
		return fmt.Errorf("account type must be %s or %s", constants.AccountTypeSavings, constants.AccountTypeCurrent)
	}
	return nil
}

// ValidateGender allows an empty value, gender is optional.
func ValidateGender(val any) error {
	g, ok := val.(string)
	if !ok {
		return fmt.Errorf("gender must be a string")
	}
	g = strings.ToUpper(strings.TrimSpace(g))
	if g == "" {
		return nil
	}
	if !constants.Genders[g] {
		return fmt.Errorf("gender must be one of %s, %s, %s", constants.GenderMale, constants.GenderFemale, constants.GenderOther)
	}
	return nil
}

// ValidateBirthDate allows an empty value. A date in the future is rejected.
func ValidateBirthDate(val any) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("birth date must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return fmt.Errorf("birth date must be in YYYY-MM-DD format")
	}
	if d.After(time.Now()) {
		return fmt.Errorf("birth date can't be in the future")
	}
	return nil
}

// ValidateAmountInput validates a typed amount from an interactive prompt.
func ValidateAmountInput(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(input, ",", ""))
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if err := checkPositive(amount); err != nil {
		v, _ := AsViolation(err)
		return fmt.Errorf("%s", v.Reason)
	}
	return nil
}

// ValidateCurrency validates a currency code format.
func ValidateCurrency(val any) error {
	currency, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency code must be a string")
	}

	currency = strings.TrimSpace(strings.ToUpper(currency))
	if currency == "" {
		return nil // Empty is allowed (will use default)
	}

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. BDT)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}
	return nil
}

// ValidateReportRange parses optional inclusive YYYY-MM-DD bounds in loc.
// A nil result means the bound is open.
func ValidateReportRange(start, end string, loc *time.Location) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if s := strings.TrimSpace(start); s != "" {
		d, err := time.ParseInLocation(constants.DateFormat, s, loc)
		if err != nil {
			return nil, nil, violation(CodeInvalidDate, "invalid start date %q, expected YYYY-MM-DD", s)
		}
		from = &d
	}
	if s := strings.TrimSpace(end); s != "" {
		d, err := time.ParseInLocation(constants.DateFormat, s, loc)
		if err != nil {
			return nil, nil, violation(CodeInvalidDate, "invalid end date %q, expected YYYY-MM-DD", s)
		}
		to = &d
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, violation(CodeInvalidDate, "end date %s is before start date %s", end, start)
	}
	return from, to, nil
}
