// Package lock provides per-account mutual exclusion for the transaction engine.
package lock

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTimeout is returned when a lock could not be taken within the wait bound.
var ErrTimeout = errors.New("lock wait timed out")

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Manager hands out one exclusive lock per account id. Locks for several
// accounts are always taken in ascending id order, so two callers locking
// the same pair can never wait on each other in a cycle.
type Manager struct {
	mu      sync.Mutex
	locks   map[int64]*entry
	timeout time.Duration
}

func NewManager(timeout time.Duration) *Manager {
	return &Manager{
		locks:   make(map[int64]*entry),
		timeout: timeout,
	}
}

// Acquire locks every given account and returns a func that releases them.
// On failure nothing stays locked.
func (m *Manager) Acquire(ctx context.Context, ids ...int64) (func(), error) {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]int64, 0, len(ordered))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			m.unlock(held[i])
		}
	}

	for _, id := range ordered {
		if err := m.lock(ctx, id); err != nil {
			release()
			return nil, fmt.Errorf("account %d: %w", id, err)
		}
		held = append(held, id)
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}

func (m *Manager) lock(ctx context.Context, id int64) error {
	e := m.ref(id)

	waitCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := e.sem.Acquire(waitCtx, 1); err != nil {
		m.unref(id)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTimeout
	}
	return nil
}

func (m *Manager) unlock(id int64) {
	m.mu.Lock()
	e := m.locks[id]
	m.mu.Unlock()

	e.sem.Release(1)
	m.unref(id)
}

func (m *Manager) ref(id int64) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[id]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		m.locks[id] = e
	}
	e.refs++
	return e
}

func (m *Manager) unref(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.locks[id]
	e.refs--
	if e.refs == 0 {
		delete(m.locks, id)
	}
}

// Len reports how many accounts currently have a holder or a waiter.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
