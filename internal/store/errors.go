package store

import (
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

var (
	ErrAccountExists       = errors.New("account already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrConflict            = errors.New("database is busy")
)

// translateErr tags driver errors with the store sentinels so callers never
// need to import the sqlite driver.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch {
	case errors.Is(sqliteErr.Code, sqlite.ErrBusy), errors.Is(sqliteErr.Code, sqlite.ErrLocked):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique):
		return fmt.Errorf("%w: %v", ErrAccountExists, err)
	case errors.Is(sqliteErr.Code, sqlite.ErrConstraint):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}
