package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"chatorder/internal/models"
	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"
	"chatorder/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminConfig struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

type AdminHandler struct {
	cfg    AdminConfig
	orders service.OrderService
	log    *zap.Logger
}

func NewAdminHandler(cfg AdminConfig, orders service.OrderService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{cfg: cfg, orders: orders, log: log}
}

// Login exchanges the operator credentials for a short-lived admin token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("username and password are required", nil))
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Password)) == 1
	if !userOK || !passOK {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid credentials"))
		return
	}

	claims := jwt.MapClaims{
		"sub":  req.Username,
		"role": "admin",
		"exp":  time.Now().Add(h.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.log.Error("failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError("token generation failed"))
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: signed})
}

// ListOrders returns orders across all customers with optional status
// filtering and paging.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var f service.ListFilter
	if raw := c.Query("status"); raw != "" {
		status := models.OrderStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("unknown status", nil))
			return
		}
		f.Status = &status
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, total, err := h.orders.ListAllOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Orders: orders, Total: total})
}

// GetOrder returns one order without customer scoping.
func (h *AdminHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", nil))
		return
	}

	order, err := h.orders.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus advances the order through its lifecycle. Transitions obey
// the same validity table as the customer paths.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", nil))
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("status is required", nil))
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), orderID, models.OrderStatus(req.Status))
	middleware.RecordOrderOperation("set_status", err == nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
