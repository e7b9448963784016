package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, account_no, owner_ref, account_type, balance, opened_date, gender, birth_date`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO accounts (owner_ref, account_type, balance, opened_date, gender, birth_date)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var birthDate any
	if acc.BirthDate != nil {
		birthDate = acc.BirthDate.Format(constants.DateFormat)
	}

	var newID int64
	err = stmt.QueryRowContext(ctx,
		acc.OwnerRef, acc.Type, toCents(acc.Balance),
		acc.OpenedDate.Format(constants.DateFormat), acc.Gender, birthDate,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to create account for '%s': %w", acc.OwnerRef, translateErr(err))
	}

	return newID, nil
}

func (s *Store) SetAccountNo(ctx context.Context, id int64, accountNo string) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE accounts
        SET account_no = ?
        WHERE id = ? AND account_no IS NULL
    `, accountNo, id)
	if err != nil {
		return fmt.Errorf("failed to set account number: %w", translateErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account with ID %d without number: %w", id, ErrRecordNotFound)
	}

	return nil
}

func (s *Store) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, translateErr(err))
	}

	return acc, nil
}

func (s *Store) GetAccountByNo(ctx context.Context, accountNo string) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE account_no = ?", accountNo)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account number '%s': %w", accountNo, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", accountNo, translateErr(err))
	}

	return acc, nil
}

func (s *Store) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+accountColumns+" FROM accounts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", translateErr(err))
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// ApplyBalanceDelta adds delta to the stored balance and returns the new value.
// The row CHECK constraint rejects a negative or overflowing result.
func (s *Store) ApplyBalanceDelta(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var newBalance int64
	err := s.db.QueryRowContext(ctx, `
        UPDATE accounts
        SET balance = balance + ?
        WHERE id = ?
        RETURNING balance
    `, toCents(delta), id).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to apply balance delta to account %d: %w", id, translateErr(err))
	}

	return fromCents(newBalance), nil
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}

	var (
		accountNo  sql.NullString
		balance    int64
		openedDate string
		birthDate  sql.NullString
	)

	err := row.Scan(
		&acc.ID, &accountNo, &acc.OwnerRef, &acc.Type,
		&balance, &openedDate, &acc.Gender, &birthDate,
	)
	if err != nil {
		return nil, err
	}

	acc.AccountNo = accountNo.String
	acc.Balance = fromCents(balance)

	if acc.OpenedDate, err = time.Parse(constants.DateFormat, openedDate); err != nil {
		return nil, fmt.Errorf("invalid opened_date %q: %w", openedDate, err)
	}

	if birthDate.Valid && birthDate.String != "" {
		bd, err := time.Parse(constants.DateFormat, birthDate.String)
		if err != nil {
			return nil, fmt.Errorf("invalid birth_date %q: %w", birthDate.String, err)
		}
		acc.BirthDate = &bd
	}

	return acc, nil
}
