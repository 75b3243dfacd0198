package service

import (
	"context"

	"chatorder/internal/models"

	"github.com/google/uuid"
)

type ListFilter struct {
	Status *models.OrderStatus
	Limit  int
	Offset int
}

// OrderService owns the cart-to-order transaction and the order lifecycle.
// Customer-facing operations are always scoped by customerID; SetStatus and
// ListAllOrders are the administrator surface.
type OrderService interface {
	// Checkout atomically materializes the customer's cart into an
	// immutable order with snapshotted prices, then empties the cart.
	Checkout(ctx context.Context, customerID uuid.UUID, note string) (*models.Order, error)
	GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	// Cancel is the customer path: allowed only from pending or preparing.
	Cancel(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error)

	SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListAllOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
}
