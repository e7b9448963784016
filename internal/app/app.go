package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mahafuj2040/mamar-bank/internal/config"
	"github.com/Mahafuj2040/mamar-bank/internal/lock"
	"github.com/Mahafuj2040/mamar-bank/internal/logger"
	"github.com/Mahafuj2040/mamar-bank/internal/notify"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"go.uber.org/zap"
)

const (
	appDirName = "mamar"
	dbFileName = "mamar.db"
)

type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Service    *service.Service
	Store      *store.Store
	Dispatcher *notify.Dispatcher
	DBPath     string
	Notifier   string
}

// NewApp wires config, logger, database, locks, notifications and services,
// then returns the App with a cleanup that releases them in reverse order.
func NewApp(cfg *config.Config) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, store.Options{
		BusyTimeout:  cfg.Database.BusyTimeout,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	port, notifierName, err := buildPort(cfg.Notify, log)
	if err != nil {
		_ = dbStore.Close()
		_ = log.Sync()
		return nil, nil, err
	}

	dispatcher := notify.NewDispatcher(port, log, notify.DispatcherOptions{
		QueueSize: cfg.Notify.QueueSize,
		Workers:   cfg.Notify.Workers,
		Timeout:   cfg.Notify.Timeout,
	})
	dispatcher.Start()

	locks := lock.NewManager(cfg.Engine.LockTimeout)
	svc := service.NewService(dbStore, locks, dispatcher, log, service.NewConfig(cfg))

	log.Debug("application ready",
		zap.String("db", dbPath),
		zap.String("notifier", notifierName),
	)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Notify.Timeout)
		defer cancel()

		if err := dispatcher.Close(ctx); err != nil {
			log.Warn("pending notifications were not delivered", zap.Error(err))
		}
		if err := dbStore.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
		_ = log.Sync()
	}

	return &App{
		Config:     cfg,
		Log:        log,
		Service:    svc,
		Store:      dbStore,
		Dispatcher: dispatcher,
		DBPath:     dbPath,
		Notifier:   notifierName,
	}, cleanup, nil
}

// buildPort always logs notifications and also posts them to Discord when a
// bot token and channel are configured.
func buildPort(cfg config.NotifyConfig, log *zap.Logger) (notify.Port, string, error) {
	logPort := notify.NewLogPort(log)
	if cfg.Discord.Token == "" || cfg.Discord.ChannelID == "" {
		return logPort, "log", nil
	}

	session, err := notify.NewDiscordSession(cfg.Discord.Token)
	if err != nil {
		return nil, "", err
	}
	return notify.MultiPort{logPort, notify.NewDiscordPort(session, cfg.Discord.ChannelID)}, "log+discord", nil
}

// ResolveDBPath returns the configured database path, or the default file in
// the application data directory.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return cfg.Database.Path, nil
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, dbFileName), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appDirName), nil
	}

	return filepath.Join(configDir, appDirName), nil
}
