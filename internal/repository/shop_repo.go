package repository

import (
	"context"
	"errors"

	"chatorder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	ListActive(ctx context.Context) ([]models.Shop, error)
}

type shopRepo struct{ db *gorm.DB }

func NewShopRepo(db *gorm.DB) ShopRepo { return &shopRepo{db: db} }

func (r *shopRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.WithContext(ctx).First(&shop, "id = ? AND is_active = true", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepo) ListActive(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.WithContext(ctx).Where("is_active = true").Order("name ASC").Find(&shops).Error
	return shops, err
}
