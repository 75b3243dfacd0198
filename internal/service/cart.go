package service

import (
	"context"

	"chatorder/internal/models"

	"github.com/google/uuid"
)

// CartView is a cart with its derived totals. TotalPrice and ItemCount are
// computed from live product prices on every read, never stored.
type CartView struct {
	Cart       *models.Cart
	TotalPrice int64
	ItemCount  int32
}

type CartService interface {
	// GetCart returns the customer's cart, creating an empty one on first
	// access. The customer ends up with exactly one cart even when both
	// access channels call this concurrently.
	GetCart(ctx context.Context, customerID uuid.UUID) (*CartView, error)
	// AddItem merges: adding a product already in the cart increments its
	// quantity instead of creating a second line.
	AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*CartView, error)
	// UpdateQuantity overwrites the stored quantity; zero or negative
	// deletes the item.
	UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*CartView, error)
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*CartView, error)
}
