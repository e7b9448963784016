package ui

import (
	"fmt"

	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf(" %s   ", text))
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf("# %s   ", text))
}

func Separator() {
	pterm.Println(pterm.Gray("────────────────────────────────────────"))
}

// Money colors an amount by sign: credits green, debits red, zero gray.
func Money(d decimal.Decimal, currency string) string {
	s := utils.FormatMoney(d, currency)
	switch d.Sign() {
	case 1:
		return pterm.Green(s)
	case -1:
		return pterm.Red(s)
	default:
		return pterm.Gray(s)
	}
}
