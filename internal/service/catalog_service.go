package service

import (
	"context"

	"chatorder/internal/models"
	"chatorder/internal/repository"

	"github.com/google/uuid"
)

type catalogService struct {
	repo *repository.Repository
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListActiveShops(ctx context.Context) ([]models.Shop, error) {
	return s.repo.Shops.ListActive(ctx)
}

func (s *catalogService) GetActiveShop(ctx context.Context, id uuid.UUID) (*ShopMenu, error) {
	shop, err := s.repo.Shops.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	products, err := s.repo.Products.ListAvailableByShop(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ShopMenu{Shop: shop, Products: products}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}
