package service

import (
	"context"
	"errors"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/lock"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/notify"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionService is the transaction engine. Every balance change goes
// through Execute.
type TransactionService struct {
	repo     store.Repository
	locks    *lock.Manager
	notifier notify.Notifier
	log      *zap.Logger
	config   Config
}

func NewTransactionService(repo store.Repository, locks *lock.Manager, notifier notify.Notifier, log *zap.Logger, cfg Config) *TransactionService {
	return &TransactionService{
		repo:     repo,
		locks:    locks,
		notifier: notifier,
		log:      log.Named("engine"),
		config:   cfg,
	}
}

func (ts *TransactionService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*Result, error) {
	return ts.Execute(ctx, Request{Kind: constants.TypeDeposit, AccountID: accountID, Amount: amount})
}

func (ts *TransactionService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*Result, error) {
	return ts.Execute(ctx, Request{Kind: constants.TypeWithdrawal, AccountID: accountID, Amount: amount})
}

func (ts *TransactionService) RequestLoan(ctx context.Context, accountID int64, amount decimal.Decimal) (*Result, error) {
	return ts.Execute(ctx, Request{Kind: constants.TypeLoan, AccountID: accountID, Amount: amount})
}

func (ts *TransactionService) Transfer(ctx context.Context, accountID int64, amount decimal.Decimal, targetAccountNo string) (*Result, error) {
	return ts.Execute(ctx, Request{
		Kind:            constants.TypeTransfer,
		AccountID:       accountID,
		Amount:          amount,
		TargetAccountNo: targetAccountNo,
	})
}

func (ts *TransactionService) PayLoan(ctx context.Context, loanID int64) (*Result, error) {
	return ts.Execute(ctx, Request{Kind: constants.OpLoanPayment, LoanID: loanID})
}

// ApproveLoan is the administrative PENDING -> APPROVED step. No money moves.
func (ts *TransactionService) ApproveLoan(ctx context.Context, loanID int64) (*Result, error) {
	return ts.Execute(ctx, Request{Kind: constants.OpLoanApproval, LoanID: loanID})
}

// ListLoans returns the LOAN entries of an account, newest first.
func (ts *TransactionService) ListLoans(ctx context.Context, accountID int64) ([]*model.Transaction, error) {
	if _, err := ts.repo.GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound("account", accountID)
		}
		return nil, classify(err)
	}

	loans, err := ts.repo.QueryEntries(ctx, accountID, store.EntryFilter{Type: constants.TypeLoan})
	if err != nil {
		return nil, classify(err)
	}
	return loans, nil
}

// GetLoan returns a loan entry together with its account.
func (ts *TransactionService) GetLoan(ctx context.Context, loanID int64) (*model.Transaction, *model.Account, error) {
	loan, acc, err := loadLoan(ctx, ts.repo, loanID)
	if err != nil {
		return nil, nil, classify(err)
	}
	if loan.Type != constants.TypeLoan && loan.Type != constants.TypeLoanPaid {
		return nil, nil, notFound("loan", loanID)
	}
	return loan, acc, nil
}

// Execute runs one operation to completion. Conflicts are retried with
// exponential backoff up to the configured limit. Notifications are queued
// only after the commit.
func (ts *TransactionService) Execute(ctx context.Context, req Request) (*Result, error) {
	log := ts.log.With(zap.String("kind", req.Kind), zap.Int64("account_id", req.AccountID))
	if req.LoanID != 0 {
		log = log.With(zap.Int64("loan_id", req.LoanID))
	}

	var (
		res     *Result
		attempt int
	)
	op := func() error {
		attempt++
		r, err := ts.executeOnce(ctx, req)
		if err == nil {
			res = r
			return nil
		}

		err = classify(err)
		if errors.Is(err, ErrConcurrencyConflict) {
			log.Warn("operation conflicted", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		return backoff.Permanent(err)
	}

	if err := backoff.Retry(op, ts.newBackOff(ctx)); err != nil {
		ts.logFailure(log, err)
		return nil, err
	}

	log.Debug("operation committed",
		zap.Int("attempt", attempt),
		zap.String("balance", res.Balance().StringFixed(2)),
	)
	ts.notifyResult(res)
	return res, nil
}

func (ts *TransactionService) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	if ts.config.RetryBaseDelay > 0 {
		eb.InitialInterval = ts.config.RetryBaseDelay
		eb.MaxInterval = 32 * ts.config.RetryBaseDelay
	}
	eb.MaxElapsedTime = 0

	retries := ts.config.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)
}

func (ts *TransactionService) logFailure(log *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrPersistence):
		log.Error("operation failed", zap.Error(err))
	case errors.Is(err, ErrConcurrencyConflict):
		log.Warn("operation gave up after retries", zap.Error(err))
	default:
		if v, ok := validation.AsViolation(err); ok {
			log.Info("operation rejected", zap.String("code", string(v.Code)), zap.String("reason", v.Reason))
			return
		}
		log.Info("operation aborted", zap.Error(err))
	}
}

// executeOnce resolves the accounts, takes their locks in id order and runs
// the atomic unit. The caller's ctx only governs the steps before the unit
// starts; once it starts it runs to commit or rollback.
func (ts *TransactionService) executeOnce(ctx context.Context, req Request) (*Result, error) {
	ids, err := ts.resolve(ctx, &req)
	if err != nil {
		return nil, err
	}

	release, err := ts.locks.Acquire(ctx, ids...)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var res *Result
	err = ts.repo.ExecTx(context.WithoutCancel(ctx), func(repo store.Repository) error {
		var err error
		res, err = ts.apply(context.WithoutCancel(ctx), repo, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// resolve fills in the source account for loan operations and returns the ids
// that must be locked. An unknown transfer target is not an error here, the
// transfer validator reports it.
func (ts *TransactionService) resolve(ctx context.Context, req *Request) ([]int64, error) {
	switch req.Kind {
	case constants.OpLoanPayment, constants.OpLoanApproval:
		loan, err := ts.repo.GetEntryByID(ctx, req.LoanID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, notFound("loan", req.LoanID)
			}
			return nil, err
		}
		req.AccountID = loan.AccountID
		return []int64{loan.AccountID}, nil

	case constants.TypeDeposit, constants.TypeWithdrawal, constants.TypeLoan, constants.TypeTransfer:
		if _, err := ts.repo.GetAccountByID(ctx, req.AccountID); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, notFound("account", req.AccountID)
			}
			return nil, err
		}
		if req.Kind != constants.TypeTransfer || req.TargetAccountNo == "" {
			return []int64{req.AccountID}, nil
		}

		target, err := ts.repo.GetAccountByNo(ctx, req.TargetAccountNo)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return []int64{req.AccountID}, nil
			}
			return nil, err
		}
		return []int64{req.AccountID, target.ID}, nil

	default:
		return nil, validation.NewViolation(validation.CodeInvalidOperation, "unknown operation %q", req.Kind)
	}
}

func (ts *TransactionService) now() time.Time {
	return ts.config.Now().UTC().Truncate(time.Second)
}
