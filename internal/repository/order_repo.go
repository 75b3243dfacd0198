package repository

import (
	"context"
	"errors"

	"chatorder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderListFilter struct {
	CustomerID *uuid.UUID
	Status     *models.OrderStatus
	Limit      int
	Offset     int
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*models.Order, error)
	// UpdateStatus writes the new status only if the row still carries the
	// status the caller observed. A zero count means another writer got
	// there first and the caller must re-evaluate the transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (int64, error)
	List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error)

	// WithTx runs fn inside one database transaction. Checkout spans order
	// creation, line creation and cart clearing, so the closure exposes
	// transactional views of all three repos.
	WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo, txCarts CartRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&ord, "id = ? AND customer_id = ?", id, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return tx.RowsAffected, tx.Error
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []*models.Order
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Preload("Items").Find(&list).Error
	return list, total, err
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo, txCarts CartRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx}, &cartRepo{db: tx})
	})
}
