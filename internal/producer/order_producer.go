package producer

import (
	"context"
	"encoding/json"
	"time"

	"chatorder/internal/service"

	"github.com/segmentio/kafka-go"
)

// Event envelope types on the order-events topic.
const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
	TypeOrderCancelled     = "order.cancelled"
)

type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// OrderEventProducer publishes order events to Kafka. Running the notifier
// as a separate consumer means a notification physically cannot be sent for
// a transaction that did not commit.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

var _ service.EventBus = (*OrderEventProducer)(nil)

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, e.OrderID.String(), TypeOrderCreated, e)
}

func (p *OrderEventProducer) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return p.publish(ctx, e.OrderID.String(), TypeOrderStatusChanged, e)
}

func (p *OrderEventProducer) PublishOrderCancelled(ctx context.Context, e service.OrderCancelledEvent) error {
	return p.publish(ctx, e.OrderID.String(), TypeOrderCancelled, e)
}

func (p *OrderEventProducer) publish(ctx context.Context, key, typ string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(Envelope{Type: typ, Data: data})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
