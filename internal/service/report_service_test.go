package service

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRange(t *testing.T) {
	env := newTestEnv(t)
	acc := env.openAccount(t, "a@example.com")
	other := env.openAccount(t, "b@example.com")
	ctx := context.Background()

	day := func(d, h int) time.Time { return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC) }

	env.clock.Set(day(1, 9))
	env.fund(t, acc.ID, "1000")
	env.clock.Set(day(2, 23))
	_, err := env.svc.Transaction.Withdraw(ctx, acc.ID, dec("600"))
	require.NoError(t, err)
	env.clock.Set(day(3, 0))
	_, err = env.svc.Transaction.Transfer(ctx, acc.ID, dec("150"), other.AccountNo)
	require.NoError(t, err)

	full, err := env.svc.Report.RangeFromStrings(ctx, acc.ID, "", "")
	require.NoError(t, err)
	require.Len(t, full.Entries, 3)
	assert.True(t, full.PeriodSum.Equal(dec("250")), "no range reports the balance")
	assert.True(t, full.Entries[0].Timestamp.After(full.Entries[2].Timestamp), "newest first")

	single, err := env.svc.Report.RangeFromStrings(ctx, acc.ID, "2024-03-02", "2024-03-02")
	require.NoError(t, err)
	require.Len(t, single.Entries, 1)
	assert.True(t, single.PeriodSum.Equal(dec("-600")))

	fromTwo, err := env.svc.Report.RangeFromStrings(ctx, acc.ID, "2024-03-02", "")
	require.NoError(t, err)
	assert.Len(t, fromTwo.Entries, 2)
	assert.True(t, fromTwo.PeriodSum.Equal(dec("-750")))

	untilTwo, err := env.svc.Report.RangeFromStrings(ctx, acc.ID, "", "2024-03-02")
	require.NoError(t, err)
	assert.Len(t, untilTwo.Entries, 2)
	assert.True(t, untilTwo.PeriodSum.Equal(dec("400")))

	recipient, err := env.svc.Report.RangeFromStrings(ctx, other.ID, "2024-03-03", "2024-03-03")
	require.NoError(t, err)
	require.Len(t, recipient.Entries, 1)
	assert.True(t, recipient.PeriodSum.Equal(dec("150")))
}

func TestReportTimezone(t *testing.T) {
	env := newTestEnv(t)
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)
	env.svc.Report.config.Location = dhaka

	acc := env.openAccount(t, "a@example.com")
	// 20:00 UTC on the 1st is already the 2nd in Dhaka.
	env.clock.Set(time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC))
	env.fund(t, acc.ID, "100")

	first, err := env.svc.Report.RangeFromStrings(context.Background(), acc.ID, "2024-03-01", "2024-03-01")
	require.NoError(t, err)
	assert.Empty(t, first.Entries)

	second, err := env.svc.Report.RangeFromStrings(context.Background(), acc.ID, "2024-03-02", "2024-03-02")
	require.NoError(t, err)
	assert.Len(t, second.Entries, 1)
}

func TestReportErrors(t *testing.T) {
	env := newTestEnv(t)
	acc := env.openAccount(t, "a@example.com")

	_, err := env.svc.Report.RangeFromStrings(context.Background(), 999, "", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.svc.Report.RangeFromStrings(context.Background(), acc.ID, "2024-13-01", "")
	assert.True(t, validation.IsViolation(err, validation.CodeInvalidDate))

	_, err = env.svc.Report.RangeFromStrings(context.Background(), acc.ID, "2024-03-05", "2024-03-01")
	assert.True(t, validation.IsViolation(err, validation.CodeInvalidDate))
}

func TestDedupeEntries(t *testing.T) {
	a := &model.Transaction{ID: 1}
	b := &model.Transaction{ID: 2}

	out := dedupeEntries([]*model.Transaction{a, b, a, b, a})
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
}
