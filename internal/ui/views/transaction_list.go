package views

import (
	"fmt"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/ui"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	Currency string
	Location *time.Location
	// AccountNos maps account ids to account numbers for the counterparty column.
	AccountNos map[int64]string
}

func NewTransactionListView(currency string, loc *time.Location) *TransactionListView {
	return &TransactionListView{Currency: currency, Location: loc}
}

func (v *TransactionListView) Render(entries []*model.Transaction) error {
	if len(entries) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Time", "Type", "Amount", "Balance After", "Counterparty"},
	}

	for _, e := range entries {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", e.ID),
			formatTime(e.Timestamp, v.Location),
			TypeLabel(e),
			ui.Money(e.Effect(), ""),
			utils.FormatAmount(e.BalanceAfter),
			v.counterparty(e),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(entries))
	return nil
}

func (v *TransactionListView) counterparty(e *model.Transaction) string {
	if e.TargetAccountID == nil {
		return "-"
	}
	if no, ok := v.AccountNos[*e.TargetAccountID]; ok {
		return no
	}
	return fmt.Sprintf("[ID: %d]", *e.TargetAccountID)
}
