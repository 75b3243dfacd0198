package service

import (
	"context"
	"time"

	"chatorder/internal/models"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int32     `json:"quantity"`
	Price       int64     `json:"price"`
	Subtotal    int64     `json:"subtotal"`
}

type OrderCreatedEvent struct {
	OrderID     uuid.UUID        `json:"order_id"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	ChannelID   string           `json:"channel_id"`
	ShopID      uuid.UUID        `json:"shop_id"`
	ShopName    string           `json:"shop_name"`
	Items       []OrderItemEvent `json:"items"`
	TotalAmount int64            `json:"total_amount"`
	Note        string           `json:"note,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID   uuid.UUID          `json:"order_id"`
	ChannelID string             `json:"channel_id"`
	ShopName  string             `json:"shop_name"`
	From      models.OrderStatus `json:"from"`
	To        models.OrderStatus `json:"to"`
	ChangedAt time.Time          `json:"changed_at"`
}

type OrderCancelledEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	ChannelID   string    `json:"channel_id"`
	ShopName    string    `json:"shop_name"`
	TotalAmount int64     `json:"total_amount"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// EventBus carries order events out of the transaction pipeline. Publishers
// are invoked strictly after the triggering commit is durable; a publish
// failure is logged by the caller and never fails the request.
type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
	PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error
}
