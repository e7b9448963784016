package config

import (
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Engine     EngineConfig   `mapstructure:"engine"`
	Rules      RulesConfig    `mapstructure:"rules"`
	Notify     NotifyConfig   `mapstructure:"notify"`
	Log        LogConfig      `mapstructure:"log"`
	Server     ServerConfig   `mapstructure:"server"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path         string        `mapstructure:"path"`
	BusyTimeout  time.Duration `mapstructure:"busy_timeout" validate:"gte=0"`
	MaxOpenConns int           `mapstructure:"max_open_conns" validate:"gte=0"`
}

type EngineConfig struct {
	LockTimeout    time.Duration `mapstructure:"lock_timeout" validate:"gt=0"`
	MaxRetries     int           `mapstructure:"max_retries" validate:"gte=0,lte=20"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" validate:"gte=0"`
}

// RulesConfig holds the business limits in whole currency units.
type RulesConfig struct {
	MinDeposit    int64 `mapstructure:"min_deposit" validate:"gt=0"`
	MinWithdrawal int64 `mapstructure:"min_withdrawal" validate:"gt=0"`
	MaxWithdrawal int64 `mapstructure:"max_withdrawal" validate:"gtefield=MinWithdrawal"`
	MaxLoans      int   `mapstructure:"max_loans" validate:"gte=1"`
}

type NotifyConfig struct {
	QueueSize int           `mapstructure:"queue_size" validate:"gte=1"`
	Workers   int           `mapstructure:"workers" validate:"gte=1"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Discord   DiscordConfig `mapstructure:"discord"`
}

type DiscordConfig struct {
	Token     string `mapstructure:"token"`
	ChannelID string `mapstructure:"channel_id" validate:"required_with=Token"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency" validate:"omitempty,len=3,alpha"`
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         "",
			BusyTimeout:  5 * time.Second,
			MaxOpenConns: 1,
		},
		Engine: EngineConfig{
			LockTimeout:    2 * time.Second,
			MaxRetries:     3,
			RetryBaseDelay: 20 * time.Millisecond,
		},
		Rules: RulesConfig{
			MinDeposit:    constants.DefaultMinDeposit,
			MinWithdrawal: constants.DefaultMinWithdrawal,
			MaxWithdrawal: constants.DefaultMaxWithdrawal,
			MaxLoans:      constants.DefaultMaxLoans,
		},
		Notify: NotifyConfig{
			QueueSize: 256,
			Workers:   2,
			Timeout:   5 * time.Second,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Defaults: DefaultsConfig{
			Currency: "BDT",
			Timezone: "UTC",
		},
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.Defaults.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Defaults.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
