package views

import (
	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	Currency string
}

func NewAccountListView(currency string) *AccountListView {
	return &AccountListView{Currency: currency}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"Account No", "Owner", "Type", "Opened", "Balance"}}

	for _, acc := range accounts {
		typeLabel := pterm.Cyan(acc.Type)
		if acc.Type == constants.AccountTypeCurrent {
			typeLabel = pterm.Magenta(acc.Type)
		}
		balance := utils.FormatMoney(acc.Balance, v.Currency)
		if acc.Balance.IsZero() {
			balance = pterm.Gray(balance)
		}
		tableData = append(tableData, []string{
			acc.AccountNo,
			acc.OwnerRef,
			typeLabel,
			acc.OpenedDate.Format(constants.DateFormat),
			balance,
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
