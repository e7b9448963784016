package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mahafuj2040/mamar-bank/internal/lock"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrConcurrencyConflict means the operation lost a lock or database race.
	// Retrying the whole operation is safe.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrPersistence is a storage failure. Nothing was committed.
	ErrPersistence = errors.New("persistence failure")
)

type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(key)}
}

// classify maps lower layer errors onto the service error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := validation.AsViolation(err); ok {
		return err
	}

	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConcurrencyConflict),
		errors.Is(err, ErrPersistence),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, lock.ErrTimeout), errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConcurrencyConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
