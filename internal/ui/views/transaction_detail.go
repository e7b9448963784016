package views

import (
	"fmt"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/ui"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
)

var successMessages = map[string]string{
	constants.TypeDeposit:    "Deposit completed",
	constants.TypeWithdrawal: "Withdrawal completed",
	constants.TypeLoan:       "Loan requested, it will be payable once approved",
	constants.TypeTransfer:   "Transfer completed",
	constants.OpLoanPayment:  "Loan paid",
	constants.OpLoanApproval: "Loan approved",
}

// RenderOperationResult prints the entries a committed operation produced.
func RenderOperationResult(res *service.Result, currency string, loc *time.Location) error {
	pterm.Println()
	ui.PrintL2Title("Ledger Entries")

	tableData := pterm.TableData{
		{"ID", "Account", "Time", "Type", "Amount", "Balance After"},
	}
	for _, e := range res.Entries {
		accountNo := res.Account.AccountNo
		if res.Target != nil && e.AccountID == res.Target.ID {
			accountNo = res.Target.AccountNo
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", e.ID),
			accountNo,
			formatTime(e.Timestamp, loc),
			TypeLabel(e),
			ui.Money(e.Effect(), currency),
			utils.FormatAmount(e.BalanceAfter),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render(); err != nil {
		return err
	}

	msg, ok := successMessages[res.Kind]
	if !ok {
		msg = "Operation completed"
	}
	pterm.Success.Printf("%s. Balance: %s\n", msg, utils.FormatMoney(res.Balance(), currency))
	return nil
}
