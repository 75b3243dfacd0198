package repository

import (
	"context"
	"errors"

	"chatorder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo interface {
	// GetOrCreate is safe under concurrent invocation for the same
	// customer: the unique index on customer_id makes the insert a no-op
	// for the race loser, and both callers read back the same row.
	GetOrCreate(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)

	// UpsertItem merges: an existing (cart, product) row gains quantity,
	// otherwise a new row is created. Concurrent adds for the same pair
	// collapse onto one row via ON CONFLICT.
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int32) error
	// GetItemForCustomer scopes the lookup through the owning cart so a
	// customer can never reach another customer's item by guessing an id.
	GetItemForCustomer(ctx context.Context, itemID, customerID uuid.UUID) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int32) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) (int64, error)
	// DeleteItemsByID removes exactly the given rows. Checkout clears the
	// cart with the ids it snapshotted, so an item the other channel adds
	// between the read and the commit stays in the cart.
	DeleteItemsByID(ctx context.Context, itemIDs []uuid.UUID) (int64, error)
}

type cartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) CartRepo { return &cartRepo{db: db} }

func (r *cartRepo) GetOrCreate(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	cart := models.Cart{CustomerID: customerID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoNothing: true,
		}).
		Create(&cart).Error
	if err != nil {
		return nil, err
	}
	return r.GetByCustomer(ctx, customerID)
}

func (r *cartRepo) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		First(&cart, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cart, err
}

func (r *cartRepo) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int32) error {
	item := models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	return r.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(&item).Error
}

func (r *cartRepo) GetItemForCustomer(ctx context.Context, itemID, customerID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.customer_id = ?", itemID, customerID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *cartRepo) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int32) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *cartRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}

func (r *cartRepo) DeleteItemsByID(ctx context.Context, itemIDs []uuid.UUID) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Where("id IN ?", itemIDs).Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}
