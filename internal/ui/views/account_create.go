package views

import (
	"fmt"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/ui"
	"github.com/Mahafuj2040/mamar-bank/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccountSummary(acc *model.Account, currency string) error {
	ui.Separator()

	gender := acc.Gender
	if gender == "" {
		gender = "-"
	}
	birth := "-"
	if acc.BirthDate != nil {
		birth = acc.BirthDate.Format(constants.DateFormat)
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account No"), acc.AccountNo},
		{pterm.Blue("Owner"), acc.OwnerRef},
		{pterm.Blue("Type"), acc.Type},
		{pterm.Blue("Opened"), acc.OpenedDate.Format(constants.DateFormat)},
		{pterm.Blue("Gender"), gender},
		{pterm.Blue("Birth Date"), birth},
		{pterm.Blue("Balance"), utils.FormatMoney(acc.Balance, currency)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(acc *model.Account) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Account No"), acc.AccountNo},
		{pterm.Blue("Owner"), acc.OwnerRef},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account opened successfully!\n")

	return nil
}
