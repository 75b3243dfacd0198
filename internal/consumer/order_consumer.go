package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"chatorder/internal/channel"
	"chatorder/internal/producer"
	"chatorder/internal/service"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageReader is the slice of kafka.Reader the loop consumes.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// KafkaOrderConsumer reads order events and hands them to the channel
// notifier. A malformed or undeliverable message is logged and skipped; the
// loop never stops for a single bad event.
type KafkaOrderConsumer struct {
	reader   messageReader
	notifier *channel.Notifier
	log      *zap.Logger
	backoff  time.Duration
}

func NewKafkaOrderConsumer(brokers []string, groupID, topic string, notifier *channel.Notifier, log *zap.Logger) *KafkaOrderConsumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		MinBytes:          10e3,
		MaxBytes:          10e6,
		CommitInterval:    time.Second,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	})
	return &KafkaOrderConsumer{reader: r, notifier: notifier, log: log, backoff: time.Second}
}

func (c *KafkaOrderConsumer) Run(ctx context.Context) error {
	c.log.Info("kafka order consumer started")
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			// io.EOF means the reader was closed; anything else gets a
			// short pause so a dead broker cannot spin the loop hot.
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.log.Error("read message", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.backoff):
			}
			continue
		}

		var env producer.Envelope
		if err := json.Unmarshal(m.Value, &env); err != nil {
			c.log.Error("unmarshal envelope", zap.ByteString("value", m.Value), zap.Error(err))
			continue
		}

		c.handle(ctx, env)
	}
}

func (c *KafkaOrderConsumer) handle(ctx context.Context, env producer.Envelope) {
	switch env.Type {
	case producer.TypeOrderCreated:
		var ev service.OrderCreatedEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			c.log.Error("unmarshal order created", zap.Error(err))
			return
		}
		c.notifier.NotifyOrderCreated(ctx, ev)
	case producer.TypeOrderStatusChanged:
		var ev service.OrderStatusChangedEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			c.log.Error("unmarshal status changed", zap.Error(err))
			return
		}
		c.notifier.NotifyStatusChanged(ctx, ev)
	case producer.TypeOrderCancelled:
		var ev service.OrderCancelledEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			c.log.Error("unmarshal order cancelled", zap.Error(err))
			return
		}
		c.notifier.NotifyOrderCancelled(ctx, ev)
	default:
		c.log.Warn("unknown event type", zap.String("type", env.Type))
	}
}

func (c *KafkaOrderConsumer) Close() error { return c.reader.Close() }
