package handlers

import (
	"errors"
	"net/http"

	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinel errors onto the HTTP error envelope.
// Anything unrecognized becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShopNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("shop not found"))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
	case errors.Is(err, service.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart item not found"))
	case errors.Is(err, service.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("customer not found"))
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
	case errors.Is(err, service.ErrProductUnavailable):
		c.JSON(http.StatusConflict, dto.NewConflictError("product is not available"))
	case errors.Is(err, service.ErrMixedShopCart):
		c.JSON(http.StatusConflict, dto.NewConflictError("cart already contains items from another shop"))
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.NewConflictError("status transition is not allowed"))
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("cart is empty", nil))
	case errors.Is(err, service.ErrQuantityInvalid):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("quantity must be positive", nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(err.Error()))
	}
}
