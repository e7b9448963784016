package store

import (
	"context"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/shopspring/decimal"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, acc *model.Account) (int64, error)
	SetAccountNo(ctx context.Context, id int64, accountNo string) error
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	GetAccountByNo(ctx context.Context, accountNo string) (*model.Account, error)
	GetAllAccounts(ctx context.Context) ([]*model.Account, error)

	// ApplyBalanceDelta must only be called inside ExecTx.
	ApplyBalanceDelta(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error)
}

type LedgerStore interface {
	AppendEntry(ctx context.Context, entry *model.Transaction) (int64, error)
	UpdateEntry(ctx context.Context, id int64, patch EntryPatch) error
	GetEntryByID(ctx context.Context, id int64) (*model.Transaction, error)
	QueryEntries(ctx context.Context, accountID int64, filter EntryFilter) ([]*model.Transaction, error)
	CountEntriesByType(ctx context.Context, accountID int64, txType string) (int, error)
}

type Repository interface {
	AccountStore
	LedgerStore

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
