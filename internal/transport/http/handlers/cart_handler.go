package handlers

import (
	"net/http"

	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"
	"chatorder/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	carts service.CartService
	log   *zap.Logger
}

func NewCartHandler(carts service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, log: log}
}

// GetCart returns the customer's basket with derived totals, creating an
// empty one on first access.
func (h *CartHandler) GetCart(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing customer identity"))
		return
	}

	view, err := h.carts.GetCart(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

// Mutate applies one basket action. The action discriminator selects which
// typed inputs are required: add_to_cart needs product_id, the other two
// need item_id.
func (h *CartHandler) Mutate(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing customer identity"))
		return
	}

	var req dto.CartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	var (
		view *service.CartView
		err  error
	)
	switch req.Action {
	case dto.ActionAddToCart:
		if req.ProductID == nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("product_id is required", nil))
			return
		}
		quantity := int32(1)
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		view, err = h.carts.AddItem(c.Request.Context(), customerID, *req.ProductID, quantity)
	case dto.ActionUpdateQuantity:
		if req.ItemID == nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("item_id and quantity are required", nil))
			return
		}
		view, err = h.carts.UpdateQuantity(c.Request.Context(), customerID, *req.ItemID, *req.Quantity)
	case dto.ActionRemoveItem:
		if req.ItemID == nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("item_id is required", nil))
			return
		}
		view, err = h.carts.RemoveItem(c.Request.Context(), customerID, *req.ItemID)
	}

	middleware.RecordOrderOperation(req.Action, err == nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(view))
}
