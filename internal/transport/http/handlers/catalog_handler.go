package handlers

import (
	"net/http"

	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

// ListShops returns every shop currently accepting orders.
func (h *CatalogHandler) ListShops(c *gin.Context) {
	shops, err := h.catalog.ListActiveShops(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// GetShop returns one active shop together with its orderable menu.
func (h *CatalogHandler) GetShop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid shop id", nil))
		return
	}

	menu, err := h.catalog.GetActiveShop(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ShopMenuResponse{Shop: menu.Shop, Products: menu.Products})
}
