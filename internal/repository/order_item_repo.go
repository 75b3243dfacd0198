package repository

import (
	"context"
	"errors"

	"chatorder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemRepo interface {
	BulkCreate(ctx context.Context, items []models.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&rows).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rows, err
}
