package cmd

import (
	"fmt"
	"os"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, limits and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          r.app.DBPath,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		Timezone:        cfg.Location().String(),
		AppDataDir:      appDataDirOrUnknown(),
		Notifier:        r.app.Notifier,
		Limits: [][2]string{
			{"Minimum Deposit", fmt.Sprint(cfg.Rules.MinDeposit)},
			{"Withdrawal Range", fmt.Sprintf("%d - %d", cfg.Rules.MinWithdrawal, cfg.Rules.MaxWithdrawal)},
			{"Outstanding Loans", fmt.Sprintf("max %d", cfg.Rules.MaxLoans)},
		},
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
