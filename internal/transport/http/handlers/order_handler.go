package handlers

import (
	"net/http"

	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"
	"chatorder/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Checkout converts the customer's cart into an immutable order.
func (h *OrderHandler) Checkout(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing customer identity"))
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), customerID, req.Note)
	middleware.RecordOrderOperation("checkout", err == nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the customer's order history, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing customer identity"))
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns one order, scoped to the requesting customer.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing customer identity"))
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", nil))
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), customerID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Cancel is the customer cancellation path; it succeeds only while the
// order has not reached preparation completion.
func (h *OrderHandler) Cancel(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing customer identity"))
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", nil))
		return
	}

	order, err := h.orders.Cancel(c.Request.Context(), customerID, orderID)
	middleware.RecordOrderOperation("cancel", err == nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
