package service

import (
	"context"

	"chatorder/internal/models"
	"chatorder/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{repo: repo, log: log}
}

func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*CartView, error) {
	cart, err := s.repo.Carts.GetOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return viewOf(cart), nil
}

func (s *cartService) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	product, err := s.repo.Products.GetAvailableByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductUnavailable
	}

	cart, err := s.repo.Carts.GetOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// An order belongs to a single shop, so the cart must too.
	for _, it := range cart.Items {
		if it.Product.ShopID != product.ShopID {
			return nil, ErrMixedShopCart
		}
	}

	if err := s.repo.Carts.UpsertItem(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}

	return s.reload(ctx, customerID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*CartView, error) {
	item, err := s.repo.Carts.GetItemForCustomer(ctx, itemID, customerID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if quantity <= 0 {
		if _, err := s.repo.Carts.DeleteItem(ctx, itemID); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.Carts.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, customerID)
}

func (s *cartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*CartView, error) {
	item, err := s.repo.Carts.GetItemForCustomer(ctx, itemID, customerID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if _, err := s.repo.Carts.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}

	return s.reload(ctx, customerID)
}

func (s *cartService) reload(ctx context.Context, customerID uuid.UUID) (*CartView, error) {
	cart, err := s.repo.Carts.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return viewOf(cart), nil
}

func viewOf(cart *models.Cart) *CartView {
	v := &CartView{Cart: cart}
	if cart == nil {
		return v
	}
	for _, it := range cart.Items {
		v.TotalPrice += it.Subtotal()
		v.ItemCount += it.Quantity
	}
	return v
}
