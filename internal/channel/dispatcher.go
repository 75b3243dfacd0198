package channel

import (
	"context"
	"time"

	"chatorder/internal/service"
)

// Dispatcher is the in-process EventBus implementation for deployments
// without a broker: each publish hands the event to the notifier on its own
// goroutine, detached from the request context so slow deliveries never
// block the request that triggered them. Publish is called only after the
// triggering transaction has committed.
type Dispatcher struct {
	notifier *Notifier
	timeout  time.Duration
}

func NewDispatcher(notifier *Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier, timeout: 15 * time.Second}
}

var _ service.EventBus = (*Dispatcher)(nil)

func (d *Dispatcher) PublishOrderCreated(_ context.Context, e service.OrderCreatedEvent) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		d.notifier.NotifyOrderCreated(ctx, e)
	}()
	return nil
}

func (d *Dispatcher) PublishOrderStatusChanged(_ context.Context, e service.OrderStatusChangedEvent) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		d.notifier.NotifyStatusChanged(ctx, e)
	}()
	return nil
}

func (d *Dispatcher) PublishOrderCancelled(_ context.Context, e service.OrderCancelledEvent) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		d.notifier.NotifyOrderCancelled(ctx, e)
	}()
	return nil
}
