package views

import (
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderTransferSummary previews a transfer before it is confirmed.
func RenderTransferSummary(sender *model.Account, targetNo string, amount decimal.Decimal, currency string) {
	pterm.DefaultSection.Println("Transfer Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"From", sender.AccountNo + " (" + sender.OwnerRef + ")"},
		{"To", targetNo},
		{"Amount", utils.FormatMoney(amount, currency)},
		{"Balance Now", utils.FormatMoney(sender.Balance, currency)},
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderLoanPaymentSummary previews a loan payment before it is confirmed.
func RenderLoanPaymentSummary(loan *model.Transaction, acc *model.Account, currency string) {
	pterm.DefaultSection.Println("Loan Payment")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Loan", pterm.Sprintf("#%d", loan.ID)},
		{"Account", acc.AccountNo},
		{"Amount", utils.FormatMoney(loan.Amount, currency)},
		{"Balance Now", utils.FormatMoney(acc.Balance, currency)},
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
