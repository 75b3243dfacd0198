package repository

import (
	"context"
	"errors"

	"chatorder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// ListAvailableByShop returns the shop menu in its user-facing order:
	// category first, then name. The ordering must stay deterministic.
	ListAvailableByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ? AND is_available = true", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) ListAvailableByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_available = true", shopID).
		Order("category ASC, name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("price", price).Error
}
