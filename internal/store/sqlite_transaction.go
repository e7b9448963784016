package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
)

const entryColumns = `id, account_id, type, amount, balance_after, timestamp, loan_approved, target_account_id, transfer_ref`

// AppendEntry inserts a ledger entry. It relies on the caller (Service layer)
// to wrap it in ExecTx together with the matching balance change.
func (s *Store) AppendEntry(ctx context.Context, entry *model.Transaction) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO transactions (account_id, type, amount, balance_after, timestamp, loan_approved, target_account_id, transfer_ref)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var transferRef any
	if entry.TransferRef != "" {
		transferRef = entry.TransferRef
	}

	var newID int64
	err = stmt.QueryRowContext(ctx,
		entry.AccountID,
		entry.Type,
		toCents(entry.Amount),
		toCents(entry.BalanceAfter),
		entry.Timestamp.Unix(),
		entry.LoanApproved,
		entry.TargetAccountID,
		transferRef,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction (account_id: %d): %w", entry.AccountID, translateErr(err))
	}

	return newID, nil
}

func (s *Store) UpdateEntry(ctx context.Context, id int64, patch EntryPatch) error {
	var (
		sets []string
		args []any
	)
	if patch.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.LoanApproved != nil {
		sets = append(sets, "loan_approved = ?")
		args = append(args, *patch.LoanApproved)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	result, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", translateErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("transaction with ID %d: %w", id, ErrRecordNotFound)
	}

	return nil
}

func (s *Store) GetEntryByID(ctx context.Context, id int64) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM transactions WHERE id = ?", id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", translateErr(err))
	}

	return entry, nil
}

// QueryEntries returns an account's entries ordered by timestamp (newest first).
func (s *Store) QueryEntries(ctx context.Context, accountID int64, filter EntryFilter) ([]*model.Transaction, error) {
	conds := []string{"account_id = ?"}
	args := []any{accountID}

	if filter.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.From != nil {
		conds = append(conds, "timestamp >= ?")
		args = append(args, filter.From.Unix())
	}
	if filter.Until != nil {
		conds = append(conds, "timestamp < ?")
		args = append(args, filter.Until.Unix())
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT DISTINCT `+entryColumns+`
        FROM transactions
        WHERE `+strings.Join(conds, " AND ")+`
        ORDER BY timestamp DESC, id DESC
    `, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", translateErr(err))
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*model.Transaction
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *Store) CountEntriesByType(ctx context.Context, accountID int64, txType string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*)
        FROM transactions
        WHERE account_id = ? AND type = ?
    `, accountID, txType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", translateErr(err))
	}
	return count, nil
}

func scanEntry(row rowScanner) (*model.Transaction, error) {
	entry := &model.Transaction{}

	var (
		amount       int64
		balanceAfter int64
		timestamp    int64
		target       sql.NullInt64
		transferRef  sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.Type,
		&amount,
		&balanceAfter,
		&timestamp,
		&entry.LoanApproved,
		&target,
		&transferRef,
	)
	if err != nil {
		return nil, err
	}

	entry.Amount = fromCents(amount)
	entry.BalanceAfter = fromCents(balanceAfter)
	entry.Timestamp = time.Unix(timestamp, 0).UTC()
	entry.TransferRef = transferRef.String
	if target.Valid {
		entry.TargetAccountID = &target.Int64
	}

	return entry, nil
}
