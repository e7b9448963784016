package views

import (
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/pterm/pterm"
)

const timeLayout = "2006-01-02 15:04"

// TypeLabel colors a ledger entry type.
func TypeLabel(e *model.Transaction) string {
	switch e.Type {
	case constants.TypeDeposit:
		return pterm.Green(e.Type)
	case constants.TypeWithdrawal, constants.TypeLoanPaid:
		return pterm.Red(e.Type)
	case constants.TypeTransfer:
		return pterm.Blue(e.Type)
	case constants.TypeLoan:
		if e.LoanApproved {
			return pterm.Yellow("LOAN (approved)")
		}
		return pterm.Gray("LOAN (pending)")
	default:
		return e.Type
	}
}

func formatTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timeLayout)
}
