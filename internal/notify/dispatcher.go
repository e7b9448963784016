package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DispatcherOptions struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

// Dispatcher queues notifications and delivers them from a fixed worker pool.
// Enqueue never blocks: when the queue is full the notification is dropped.
type Dispatcher struct {
	port    Port
	log     *zap.Logger
	queue   chan Notification
	workers int
	timeout time.Duration

	wg       sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

var _ Notifier = (*Dispatcher)(nil)

func NewDispatcher(port Port, log *zap.Logger, opts DispatcherOptions) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	return &Dispatcher{
		port:    port,
		log:     log.Named("notify"),
		queue:   make(chan Notification, opts.QueueSize),
		workers: opts.Workers,
		timeout: opts.Timeout,
	}
}

// Start launches the workers. It must be called once.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
}

func (d *Dispatcher) Enqueue(n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("dispatcher closed, dropping notification",
			zap.String("id", n.ID), zap.String("kind", n.Kind))
		return
	}

	select {
	case d.queue <- n:
	default:
		d.log.Warn("notification queue full, dropping notification",
			zap.String("id", n.ID), zap.String("kind", n.Kind), zap.String("user", n.UserRef))
	}
}

// Close stops accepting notifications and waits for the queue to drain or for
// ctx to end, whichever comes first.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notification queue not drained: %w", ctx.Err())
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n Notification) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	err := d.safeNotify(ctx, n)
	if err == nil {
		d.log.Debug("notification delivered", zap.String("id", n.ID), zap.String("kind", n.Kind))
		return
	}
	if !errors.Is(err, ErrDelivery) {
		err = fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	d.log.Error("notification failed",
		zap.String("id", n.ID),
		zap.String("kind", n.Kind),
		zap.String("user", n.UserRef),
		zap.Error(err),
	)
}

func (d *Dispatcher) safeNotify(ctx context.Context, n Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("port panicked: %v", r)
		}
	}()
	return d.port.Notify(ctx, n)
}
