package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals and thousands separators,
// e.g. 1234567.5 -> "1,234,567.50".
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatMoney prefixes the formatted amount with a currency code.
func FormatMoney(d decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(d)
	}
	return currency + " " + FormatAmount(d)
}

// ParseAmount accepts "150", "150.5", "1,500.50". More than two decimal
// places is an error rather than a silent truncation.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount can't be empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if !d.Equal(d.Truncate(2)) {
		return decimal.Zero, fmt.Errorf("amount %s has more than two decimal places", amountStr)
	}
	return d, nil
}
