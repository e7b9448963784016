package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/lock"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/notify"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recordingNotifier) Enqueue(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recordingNotifier) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.got...)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

type testEnv struct {
	svc      *Service
	repo     *store.Store
	locks    *lock.Manager
	notifier *recordingNotifier
	clock    *fakeClock
}

type envOption func(*envSettings)

type envSettings struct {
	lockTimeout time.Duration
	notifier    notify.Notifier
	log         *zap.Logger
}

func withLockTimeout(d time.Duration) envOption {
	return func(s *envSettings) { s.lockTimeout = d }
}

func withNotifier(n notify.Notifier) envOption {
	return func(s *envSettings) { s.notifier = n }
}

func withLogger(l *zap.Logger) envOption {
	return func(s *envSettings) { s.log = l }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	settings := envSettings{lockTimeout: 30 * time.Second, log: zap.NewNop()}
	for _, o := range opts {
		o(&settings)
	}

	repo, err := store.NewStore(filepath.Join(t.TempDir(), "bank.db"), store.Options{
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	rec := &recordingNotifier{}
	notifier := settings.notifier
	if notifier == nil {
		notifier = rec
	}

	clock := &fakeClock{t: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)}
	locks := lock.NewManager(settings.lockTimeout)
	svc := NewService(repo, locks, notifier, settings.log, Config{
		Limits:         validation.DefaultLimits(),
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
		Location:       time.UTC,
		Now:            clock.Now,
	})

	return &testEnv{svc: svc, repo: repo, locks: locks, notifier: rec, clock: clock}
}

func (e *testEnv) openAccount(t *testing.T, owner string) *model.Account {
	t.Helper()
	acc, err := e.svc.Account.OpenAccount(context.Background(), validation.OpenAccountInput{
		OwnerRef: owner,
		Type:     constants.AccountTypeSavings,
		Gender:   constants.GenderOther,
	})
	require.NoError(t, err)
	return acc
}

func (e *testEnv) fund(t *testing.T, accountID int64, amount string) {
	t.Helper()
	_, err := e.svc.Transaction.Deposit(context.Background(), accountID, dec(amount))
	require.NoError(t, err)
}

func (e *testEnv) balance(t *testing.T, accountID int64) decimal.Decimal {
	t.Helper()
	acc, err := e.repo.GetAccountByID(context.Background(), accountID)
	require.NoError(t, err)
	return acc.Balance
}

// ledgerSum is the net balance effect of every entry of the account.
func (e *testEnv) ledgerSum(t *testing.T, accountID int64) decimal.Decimal {
	t.Helper()
	entries, err := e.repo.QueryEntries(context.Background(), accountID, store.EntryFilter{})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(entry.Effect())
	}
	return sum
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
