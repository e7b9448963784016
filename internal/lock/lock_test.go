package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireExcludes(t *testing.T) {
	m := NewManager(time.Second)

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), 7)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, m.Len())
}

func TestAcquireTimeout(t *testing.T) {
	m := NewManager(20 * time.Millisecond)

	release, err := m.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer release()

	_, err = m.Acquire(context.Background(), 2, 1)
	assert.True(t, errors.Is(err, ErrTimeout))

	// Account 2 must not stay locked after the failed attempt.
	r2, err := m.Acquire(context.Background(), 2)
	require.NoError(t, err)
	r2()
}

func TestAcquireCancelled(t *testing.T) {
	m := NewManager(time.Second)

	release, err := m.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = m.Acquire(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAcquireOppositeOrderNoDeadlock(t *testing.T) {
	m := NewManager(5 * time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), 1, 2)
			if assert.NoError(t, err) {
				release()
			}
		}()
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), 2, 1)
			if assert.NoError(t, err) {
				release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, m.Len())
}

func TestAcquireDuplicateIDs(t *testing.T) {
	m := NewManager(50 * time.Millisecond)

	release, err := m.Acquire(context.Background(), 3, 3)
	require.NoError(t, err)
	release()
	release()

	assert.Equal(t, 0, m.Len())
}
