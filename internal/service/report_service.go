package service

import (
	"context"
	"errors"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/shopspring/decimal"
)

// Report is an account statement. Start and End are the inclusive calendar
// days requested, nil when open.
type Report struct {
	Account   *model.Account
	Start     *time.Time
	End       *time.Time
	Entries   []*model.Transaction
	PeriodSum decimal.Decimal
}

type ReportService struct {
	repo   store.Repository
	config Config
}

func NewReportService(repo store.Repository, cfg Config) *ReportService {
	return &ReportService{repo: repo, config: cfg}
}

// RangeFromStrings parses YYYY-MM-DD bounds in the configured timezone and
// builds the report. Empty strings leave a bound open.
func (rs *ReportService) RangeFromStrings(ctx context.Context, accountID int64, start, end string) (*Report, error) {
	from, to, err := validation.ValidateReportRange(start, end, rs.config.Location)
	if err != nil {
		return nil, err
	}
	return rs.Range(ctx, accountID, from, to)
}

// Range lists the account's entries whose day falls in [start, end], newest
// first. With no bounds PeriodSum is the current balance, otherwise it is the
// net balance change of the listed entries.
func (rs *ReportService) Range(ctx context.Context, accountID int64, start, end *time.Time) (*Report, error) {
	filter := store.EntryFilter{}
	if start != nil {
		from := startOfDay(*start, rs.config.Location)
		filter.From = &from
	}
	if end != nil {
		until := startOfDay(*end, rs.config.Location).AddDate(0, 0, 1)
		filter.Until = &until
	}

	report := &Report{Start: start, End: end}

	// Account and entries are read in one transaction so the balance and the
	// listed entries agree.
	err := rs.repo.ExecTx(ctx, func(repo store.Repository) error {
		acc, err := repo.GetAccountByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return notFound("account", accountID)
			}
			return err
		}
		report.Account = acc

		entries, err := repo.QueryEntries(ctx, accountID, filter)
		if err != nil {
			return err
		}
		report.Entries = dedupeEntries(entries)
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if start == nil && end == nil {
		report.PeriodSum = report.Account.Balance
		return report, nil
	}

	sum := decimal.Zero
	for _, e := range report.Entries {
		sum = sum.Add(e.Effect())
	}
	report.PeriodSum = sum
	return report, nil
}

func dedupeEntries(entries []*model.Transaction) []*model.Transaction {
	seen := make(map[int64]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
