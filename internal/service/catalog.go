package service

import (
	"context"

	"chatorder/internal/models"

	"github.com/google/uuid"
)

// ShopMenu is an active shop with its orderable products, already in the
// user-facing order (category, then name).
type ShopMenu struct {
	Shop     *models.Shop
	Products []models.Product
}

type CatalogService interface {
	ListActiveShops(ctx context.Context) ([]models.Shop, error)
	GetActiveShop(ctx context.Context, id uuid.UUID) (*ShopMenu, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}
