package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mahafuj2040/mamar-bank/cmd/account"
	"github.com/Mahafuj2040/mamar-bank/cmd/loan"
	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/config"
	"github.com/Mahafuj2040/mamar-bank/internal/errhandler"
	"github.com/Mahafuj2040/mamar-bank/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Command annotations read by the bootstrap.
const (
	annotationLogLevel    = "mamar/log-level"
	annotationInteractive = "mamar/interactive"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config

	application = &app.App{}
	cleanup     func()
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// a missing .env is fine
	_ = godotenv.Load()

	err := NewRootCmd().ExecuteContext(context.Background())
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		errhandler.HandleError(err)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mamar",
		Short:         "mamar is a small banking ledger",
		Long:          `mamar keeps customer accounts and an append-only ledger of deposits, withdrawals, transfers and loans.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the log level (debug, info, warn, error)")

	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(loan.NewLoanCmd(application))

	rootCmd.AddCommand(NewDepositCmd(application))
	rootCmd.AddCommand(NewWithdrawCmd(application))
	rootCmd.AddCommand(NewTransferCmd(application))
	rootCmd.AddCommand(NewReportCmd(application))
	rootCmd.AddCommand(NewServeCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	return rootCmd
}

// bootstrap loads the configuration and builds the application shared by
// every subcommand.
func bootstrap(cmd *cobra.Command) error {
	created, err := initConfig()
	if err != nil {
		return err
	}

	if created && cmd.Annotations[annotationInteractive] != "false" && isTerminal() {
		if err := initWizard(); err != nil {
			return err
		}
	}

	switch {
	case cmd.Flags().Changed("log-level"):
		cfg.Log.Level = logLevel
	case cmd.Annotations[annotationLogLevel] != "":
		cfg.Log.Level = cmd.Annotations[annotationLogLevel]
	}

	built, closeFn, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	*application = *built
	cleanup = closeFn

	return nil
}

// initConfig reads the config file over the built-in defaults and reports
// whether the default file was created by this run.
func initConfig() (bool, error) {
	setDefaults(config.NewDefault())

	created := false
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return false, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if created, err = createDefaultConfig(appDir); err != nil {
			return false, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("MAMAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return false, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return false, fmt.Errorf("unable to decode into struct, %v", err)
	}

	dbPath, err := expandPath(cfg.Database.Path)
	if err != nil {
		return false, err
	}
	cfg.Database.Path = dbPath
	cfg.ConfigPath = viper.ConfigFileUsed()

	return created, nil
}

// setDefaults registers every default with viper so AutomaticEnv can bind
// the keys and a freshly written config file lists them all.
func setDefaults(d *config.Config) {
	viper.SetDefault("database.path", d.Database.Path)
	viper.SetDefault("database.busy_timeout", d.Database.BusyTimeout.String())
	viper.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)

	viper.SetDefault("engine.lock_timeout", d.Engine.LockTimeout.String())
	viper.SetDefault("engine.max_retries", d.Engine.MaxRetries)
	viper.SetDefault("engine.retry_base_delay", d.Engine.RetryBaseDelay.String())

	viper.SetDefault("rules.min_deposit", d.Rules.MinDeposit)
	viper.SetDefault("rules.min_withdrawal", d.Rules.MinWithdrawal)
	viper.SetDefault("rules.max_withdrawal", d.Rules.MaxWithdrawal)
	viper.SetDefault("rules.max_loans", d.Rules.MaxLoans)

	viper.SetDefault("notify.queue_size", d.Notify.QueueSize)
	viper.SetDefault("notify.workers", d.Notify.Workers)
	viper.SetDefault("notify.timeout", d.Notify.Timeout.String())
	viper.SetDefault("notify.discord.token", d.Notify.Discord.Token)
	viper.SetDefault("notify.discord.channel_id", d.Notify.Discord.ChannelID)

	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)

	viper.SetDefault("server.addr", d.Server.Addr)

	viper.SetDefault("defaults.currency", d.Defaults.Currency)
	viper.SetDefault("defaults.timezone", d.Defaults.Timezone)
}

func initWizard() error {
	currency, err := prompts.PromptInitCurrency(viper.GetString("defaults.currency"))
	if err != nil {
		return err
	}

	viper.Set("defaults.currency", currency)
	cfg.Defaults.Currency = currency

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", currency)

	return nil
}

func createDefaultConfig(appDir string) (bool, error) {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
