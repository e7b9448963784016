package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Mahafuj2040/mamar-bank/internal/config"
	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "data", "bank.db")
	cfg.Log.Level = "error"
	return cfg
}

func TestNewApp(t *testing.T) {
	cfg := testConfig(t)

	a, cleanup, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, cfg.Database.Path, a.DBPath)
	assert.Equal(t, "log", a.Notifier)
	assert.FileExists(t, a.DBPath)

	ctx := context.Background()
	acc, err := a.Service.Account.OpenAccount(ctx, validation.OpenAccountInput{
		OwnerRef: "alice",
		Type:     constants.AccountTypeCurrent,
	})
	require.NoError(t, err)

	res, err := a.Service.Transaction.Deposit(ctx, acc.ID, decimal.NewFromInt(250))
	require.NoError(t, err)
	assert.True(t, res.Balance().Equal(decimal.NewFromInt(250)))
}

func TestNewAppDiscordNotifier(t *testing.T) {
	cfg := testConfig(t)
	cfg.Notify.Discord.Token = "token"
	cfg.Notify.Discord.ChannelID = "123"

	a, cleanup, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "log+discord", a.Notifier)
}

func TestNewAppInvalidLogConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Format = "xml"

	_, _, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rules.MaxLoans = 0

	_, _, err := NewApp(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolveDBPath(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = "/tmp/custom.db"

	path, err := ResolveDBPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)

	cfg.Database.Path = ""
	path, err = ResolveDBPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, dbFileName, filepath.Base(path))
	assert.Equal(t, appDirName, filepath.Base(filepath.Dir(path)))
}
