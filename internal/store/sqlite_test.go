package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "bank.db"), Options{BusyTimeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestAccount(t *testing.T, s *Store, owner string) *model.Account {
	t.Helper()
	ctx := context.Background()

	id, err := s.CreateAccount(ctx, &model.Account{
		OwnerRef:   owner,
		Type:       constants.AccountTypeSavings,
		OpenedDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Gender:     constants.GenderFemale,
	})
	require.NoError(t, err)
	require.NoError(t, s.SetAccountNo(ctx, id, "10000"+owner))

	acc, err := s.GetAccountByID(ctx, id)
	require.NoError(t, err)
	return acc
}

func TestAccountRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	id, err := s.CreateAccount(ctx, &model.Account{
		OwnerRef:   "rahim@example.com",
		Type:       constants.AccountTypeCurrent,
		OpenedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Gender:     constants.GenderMale,
		BirthDate:  &birth,
	})
	require.NoError(t, err)
	require.NoError(t, s.SetAccountNo(ctx, id, "100001"))

	byNo, err := s.GetAccountByNo(ctx, "100001")
	require.NoError(t, err)
	assert.Equal(t, id, byNo.ID)
	assert.Equal(t, "rahim@example.com", byNo.OwnerRef)
	assert.Equal(t, constants.AccountTypeCurrent, byNo.Type)
	assert.True(t, byNo.Balance.IsZero())
	require.NotNil(t, byNo.BirthDate)
	assert.True(t, birth.Equal(*byNo.BirthDate))

	// account_no is immutable once assigned
	err = s.SetAccountNo(ctx, id, "999999")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetAccountByID(ctx, 42)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.GetAccountByNo(ctx, "nope")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDuplicateAccountNo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestAccount(t, s, "1")
	id, err := s.CreateAccount(ctx, &model.Account{
		OwnerRef:   "2",
		Type:       constants.AccountTypeSavings,
		OpenedDate: time.Now(),
		Gender:     constants.GenderOther,
	})
	require.NoError(t, err)

	err = s.SetAccountNo(ctx, id, "100001")
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestApplyBalanceDelta(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	acc := createTestAccount(t, s, "1")

	bal, err := s.ApplyBalanceDelta(ctx, acc.ID, decimal.RequireFromString("150.25"))
	require.NoError(t, err)
	assert.Equal(t, "150.25", bal.StringFixed(2))

	bal, err = s.ApplyBalanceDelta(ctx, acc.ID, decimal.RequireFromString("-50.25"))
	require.NoError(t, err)
	assert.Equal(t, "100.00", bal.StringFixed(2))

	_, err = s.ApplyBalanceDelta(ctx, acc.ID, decimal.NewFromInt(-101))
	assert.ErrorIs(t, err, ErrConstraintViolation)

	_, err = s.ApplyBalanceDelta(ctx, 999, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestExecTxRollsBackBothStores(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	acc := createTestAccount(t, s, "1")

	boom := errors.New("boom")
	err := s.ExecTx(ctx, func(repo Repository) error {
		bal, err := repo.ApplyBalanceDelta(ctx, acc.ID, decimal.NewFromInt(500))
		if err != nil {
			return err
		}
		if _, err := repo.AppendEntry(ctx, &model.Transaction{
			AccountID:    acc.ID,
			Type:         constants.TypeDeposit,
			Amount:       decimal.NewFromInt(500),
			BalanceAfter: bal,
			Timestamp:    time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.IsZero())

	entries, err := s.QueryEntries(ctx, acc.ID, EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExecTxRejectsNesting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(repo Repository) error {
		return repo.ExecTx(ctx, func(Repository) error { return nil })
	})
	assert.Error(t, err)
}

func TestQueryEntriesOrderAndFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	acc := createTestAccount(t, s, "1")
	other := createTestAccount(t, s, "2")

	day := func(d int) time.Time { return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC) }

	appendEntry := func(accountID int64, txType string, amount int64, at time.Time) int64 {
		id, err := s.AppendEntry(ctx, &model.Transaction{
			AccountID:    accountID,
			Type:         txType,
			Amount:       decimal.NewFromInt(amount),
			BalanceAfter: decimal.NewFromInt(amount),
			Timestamp:    at,
		})
		require.NoError(t, err)
		return id
	}

	first := appendEntry(acc.ID, constants.TypeDeposit, 100, day(1))
	second := appendEntry(acc.ID, constants.TypeLoan, 300, day(2))
	third := appendEntry(acc.ID, constants.TypeDeposit, 200, day(3))
	appendEntry(other.ID, constants.TypeDeposit, 999, day(2))

	all, err := s.QueryEntries(ctx, acc.ID, EntryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{third, second, first}, []int64{all[0].ID, all[1].ID, all[2].ID})

	from, until := day(2), day(3)
	ranged, err := s.QueryEntries(ctx, acc.ID, EntryFilter{From: &from, Until: &until})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, second, ranged[0].ID)

	loans, err := s.QueryEntries(ctx, acc.ID, EntryFilter{Type: constants.TypeLoan})
	require.NoError(t, err)
	require.Len(t, loans, 1)

	count, err := s.CountEntriesByType(ctx, acc.ID, constants.TypeDeposit)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUpdateEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	acc := createTestAccount(t, s, "1")
	target := createTestAccount(t, s, "2")

	id, err := s.AppendEntry(ctx, &model.Transaction{
		AccountID:       acc.ID,
		Type:            constants.TypeLoan,
		Amount:          decimal.NewFromInt(1000),
		BalanceAfter:    decimal.Zero,
		Timestamp:       time.Now(),
		TargetAccountID: &target.ID,
		TransferRef:     "ref-1",
	})
	require.NoError(t, err)

	approved := true
	require.NoError(t, s.UpdateEntry(ctx, id, EntryPatch{LoanApproved: &approved}))

	entry, err := s.GetEntryByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, entry.LoanApproved)
	assert.Equal(t, constants.TypeLoan, entry.Type)
	require.NotNil(t, entry.TargetAccountID)
	assert.Equal(t, target.ID, *entry.TargetAccountID)
	assert.Equal(t, "ref-1", entry.TransferRef)

	paid, notApproved := constants.TypeLoanPaid, false
	require.NoError(t, s.UpdateEntry(ctx, id, EntryPatch{Type: &paid, LoanApproved: &notApproved}))

	entry, err = s.GetEntryByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.TypeLoanPaid, entry.Type)
	assert.False(t, entry.LoanApproved)

	err = s.UpdateEntry(ctx, 9999, EntryPatch{Type: &paid})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.GetEntryByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
