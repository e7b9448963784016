package views

import (
	"fmt"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
)

func RenderLoans(loans []*model.Transaction, currency string, loc *time.Location) error {
	if len(loans) == 0 {
		pterm.Info.Println("No open loans")
		return nil
	}

	tableData := pterm.TableData{
		{"Loan ID", "Requested", "Amount", "Status"},
	}
	for _, l := range loans {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", l.ID),
			formatTime(l.Timestamp, loc),
			utils.FormatMoney(l.Amount, currency),
			TypeLabel(l),
		})
	}

	pterm.DefaultSection.Println("Loans")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
