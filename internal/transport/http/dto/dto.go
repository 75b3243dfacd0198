package dto

import (
	"chatorder/internal/models"
	"chatorder/internal/service"

	"github.com/google/uuid"
)

// Cart mutation actions. A single endpoint carries all three so a client
// can express the whole basket workflow with one request shape.
const (
	ActionAddToCart      = "add_to_cart"
	ActionUpdateQuantity = "update_quantity"
	ActionRemoveItem     = "remove_item"
)

type CartMutationRequest struct {
	Action    string     `json:"action" binding:"required,oneof=add_to_cart update_quantity remove_item"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	ItemID    *uuid.UUID `json:"item_id,omitempty"`
	Quantity  *int32     `json:"quantity,omitempty"`
}

type CheckoutRequest struct {
	Note string `json:"note"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CartResponse struct {
	Cart       *models.Cart `json:"cart"`
	TotalPrice int64        `json:"total_price"`
	ItemCount  int32        `json:"item_count"`
}

func NewCartResponse(v *service.CartView) CartResponse {
	return CartResponse{Cart: v.Cart, TotalPrice: v.TotalPrice, ItemCount: v.ItemCount}
}

type ShopMenuResponse struct {
	Shop     *models.Shop     `json:"shop"`
	Products []models.Product `json:"products"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
}
