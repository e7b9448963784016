package views

import (
	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/ui"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
)

func RenderReport(r *service.Report, list *TransactionListView) error {
	ui.PrintL1Title("Statement %s", r.Account.AccountNo)

	period := "all time"
	if r.Start != nil || r.End != nil {
		from, to := "...", "..."
		if r.Start != nil {
			from = r.Start.Format(constants.DateFormat)
		}
		if r.End != nil {
			to = r.End.Format(constants.DateFormat)
		}
		period = from + " to " + to
	}
	pterm.Printf("Owner: %s   Period: %s\n\n", r.Account.OwnerRef, period)

	if err := list.Render(r.Entries); err != nil {
		return err
	}

	label := "Net change"
	if r.Start == nil && r.End == nil {
		label = "Balance"
	}
	pterm.Println()
	pterm.Printf("%s: %s\n", pterm.Bold.Sprint(label), utils.FormatMoney(r.PeriodSum, list.Currency))
	return nil
}
