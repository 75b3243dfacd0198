package channel

import (
	"context"

	"chatorder/internal/service"

	"go.uber.org/zap"
)

// Pusher is the piece of Client the notifier needs.
type Pusher interface {
	Push(ctx context.Context, to, text string) error
}

// Notifier delivers order events to the customer's messaging channel.
// Delivery is best effort: every failure is logged and reported as false,
// never raised. Callers must only invoke it after the triggering state
// change is durably committed.
type Notifier struct {
	pusher Pusher
	log    *zap.Logger
}

func NewNotifier(pusher Pusher, log *zap.Logger) *Notifier {
	return &Notifier{pusher: pusher, log: log}
}

func (n *Notifier) NotifyOrderCreated(ctx context.Context, ev service.OrderCreatedEvent) bool {
	return n.push(ctx, ev.ChannelID, OrderConfirmText(ev), "order_created")
}

func (n *Notifier) NotifyStatusChanged(ctx context.Context, ev service.OrderStatusChangedEvent) bool {
	return n.push(ctx, ev.ChannelID, StatusChangedText(ev), "status_changed")
}

func (n *Notifier) NotifyOrderCancelled(ctx context.Context, ev service.OrderCancelledEvent) bool {
	return n.push(ctx, ev.ChannelID, CancelledText(ev), "order_cancelled")
}

func (n *Notifier) push(ctx context.Context, channelID, text, event string) bool {
	if channelID == "" {
		n.log.Warn("notification skipped: no channel id", zap.String("event", event))
		return false
	}
	if err := n.pusher.Push(ctx, channelID, text); err != nil {
		n.log.Error("notification delivery failed",
			zap.String("event", event),
			zap.String("channel_id", channelID),
			zap.Error(err))
		return false
	}
	return true
}
