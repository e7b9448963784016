// Package notify delivers post-commit account notifications. Delivery is best
// effort: failures are logged and never reach the operation that caused them.
package notify

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrDelivery = errors.New("notification delivery failed")

// Notification describes one completed operation for one account owner.
type Notification struct {
	ID       string
	UserRef  string
	Amount   decimal.Decimal
	Kind     string
	Metadata map[string]string
}

// Port is a notification sink.
type Port interface {
	Notify(ctx context.Context, n Notification) error
}

// Notifier is what the transaction engine depends on.
type Notifier interface {
	Enqueue(n Notification)
}

// PortFunc adapts a function to Port.
type PortFunc func(ctx context.Context, n Notification) error

func (f PortFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Enqueue(Notification) {}
