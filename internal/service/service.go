package service

import (
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/config"
	"github.com/Mahafuj2040/mamar-bank/internal/lock"
	"github.com/Mahafuj2040/mamar-bank/internal/notify"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Config struct {
	Limits         validation.Limits
	MaxRetries     int
	RetryBaseDelay time.Duration
	Location       *time.Location
	Now            func() time.Time
}

// NewConfig derives the service settings from the application config.
func NewConfig(cfg *config.Config) Config {
	return Config{
		Limits: validation.Limits{
			MinDeposit:    decimal.NewFromInt(cfg.Rules.MinDeposit),
			MinWithdrawal: decimal.NewFromInt(cfg.Rules.MinWithdrawal),
			MaxWithdrawal: decimal.NewFromInt(cfg.Rules.MaxWithdrawal),
			MaxLoans:      cfg.Rules.MaxLoans,
		},
		MaxRetries:     cfg.Engine.MaxRetries,
		RetryBaseDelay: cfg.Engine.RetryBaseDelay,
		Location:       cfg.Location(),
	}
}

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Report      *ReportService
}

func NewService(repo store.Repository, locks *lock.Manager, notifier notify.Notifier, log *zap.Logger, cfg Config) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		Account:     NewAccountService(repo, cfg),
		Transaction: NewTransactionService(repo, locks, notifier, log, cfg),
		Report:      NewReportService(repo, cfg),
	}
}
