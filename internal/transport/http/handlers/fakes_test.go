package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"

	"chatorder/internal/models"
	"chatorder/internal/service"

	"github.com/google/uuid"
)

func jsonBody(v any) *bytes.Buffer {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(v)
	return &buf
}

// Func-field fakes for the service interfaces.

type fakeCatalog struct {
	ListActiveShopsFunc func(ctx context.Context) ([]models.Shop, error)
	GetActiveShopFunc   func(ctx context.Context, id uuid.UUID) (*service.ShopMenu, error)
	GetProductFunc      func(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

func (f *fakeCatalog) ListActiveShops(ctx context.Context) ([]models.Shop, error) {
	if f.ListActiveShopsFunc != nil {
		return f.ListActiveShopsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeCatalog) GetActiveShop(ctx context.Context, id uuid.UUID) (*service.ShopMenu, error) {
	if f.GetActiveShopFunc != nil {
		return f.GetActiveShopFunc(ctx, id)
	}
	return nil, service.ErrShopNotFound
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if f.GetProductFunc != nil {
		return f.GetProductFunc(ctx, id)
	}
	return nil, service.ErrProductNotFound
}

type fakeCarts struct {
	GetCartFunc        func(ctx context.Context, customerID uuid.UUID) (*service.CartView, error)
	AddItemFunc        func(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*service.CartView, error)
	UpdateQuantityFunc func(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*service.CartView, error)
	RemoveItemFunc     func(ctx context.Context, customerID, itemID uuid.UUID) (*service.CartView, error)
}

func (f *fakeCarts) GetCart(ctx context.Context, customerID uuid.UUID) (*service.CartView, error) {
	if f.GetCartFunc != nil {
		return f.GetCartFunc(ctx, customerID)
	}
	return &service.CartView{Cart: &models.Cart{}}, nil
}

func (f *fakeCarts) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int32) (*service.CartView, error) {
	if f.AddItemFunc != nil {
		return f.AddItemFunc(ctx, customerID, productID, quantity)
	}
	return &service.CartView{Cart: &models.Cart{}}, nil
}

func (f *fakeCarts) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*service.CartView, error) {
	if f.UpdateQuantityFunc != nil {
		return f.UpdateQuantityFunc(ctx, customerID, itemID, quantity)
	}
	return &service.CartView{Cart: &models.Cart{}}, nil
}

func (f *fakeCarts) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*service.CartView, error) {
	if f.RemoveItemFunc != nil {
		return f.RemoveItemFunc(ctx, customerID, itemID)
	}
	return &service.CartView{Cart: &models.Cart{}}, nil
}

type fakeOrders struct {
	CheckoutFunc      func(ctx context.Context, customerID uuid.UUID, note string) (*models.Order, error)
	GetOrderFunc      func(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error)
	ListOrdersFunc    func(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	CancelFunc        func(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error)
	SetStatusFunc     func(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error)
	GetOrderByIDFunc  func(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListAllOrdersFunc func(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error)
}

func (f *fakeOrders) Checkout(ctx context.Context, customerID uuid.UUID, note string) (*models.Order, error) {
	if f.CheckoutFunc != nil {
		return f.CheckoutFunc(ctx, customerID, note)
	}
	return &models.Order{}, nil
}

func (f *fakeOrders) GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error) {
	if f.GetOrderFunc != nil {
		return f.GetOrderFunc(ctx, customerID, orderID)
	}
	return nil, service.ErrOrderNotFound
}

func (f *fakeOrders) ListOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	if f.ListOrdersFunc != nil {
		return f.ListOrdersFunc(ctx, customerID)
	}
	return nil, nil
}

func (f *fakeOrders) Cancel(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error) {
	if f.CancelFunc != nil {
		return f.CancelFunc(ctx, customerID, orderID)
	}
	return nil, service.ErrOrderNotFound
}

func (f *fakeOrders) SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if f.SetStatusFunc != nil {
		return f.SetStatusFunc(ctx, orderID, status)
	}
	return nil, service.ErrOrderNotFound
}

func (f *fakeOrders) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	if f.GetOrderByIDFunc != nil {
		return f.GetOrderByIDFunc(ctx, orderID)
	}
	return nil, service.ErrOrderNotFound
}

func (f *fakeOrders) ListAllOrders(ctx context.Context, fl service.ListFilter) ([]models.Order, int64, error) {
	if f.ListAllOrdersFunc != nil {
		return f.ListAllOrdersFunc(ctx, fl)
	}
	return nil, 0, nil
}

type fakeCustomers struct {
	IdentifyFunc         func(ctx context.Context, channelID string) (*models.Customer, error)
	RegisterFollowerFunc func(ctx context.Context, channelID, displayName string) (*models.Customer, error)
	RemoveFollowerFunc   func(ctx context.Context, channelID string) error
}

func (f *fakeCustomers) Identify(ctx context.Context, channelID string) (*models.Customer, error) {
	if f.IdentifyFunc != nil {
		return f.IdentifyFunc(ctx, channelID)
	}
	return &models.Customer{ID: uuid.New(), ChannelID: channelID}, nil
}

func (f *fakeCustomers) RegisterFollower(ctx context.Context, channelID, displayName string) (*models.Customer, error) {
	if f.RegisterFollowerFunc != nil {
		return f.RegisterFollowerFunc(ctx, channelID, displayName)
	}
	return &models.Customer{ID: uuid.New(), ChannelID: channelID, Name: displayName}, nil
}

func (f *fakeCustomers) RemoveFollower(ctx context.Context, channelID string) error {
	if f.RemoveFollowerFunc != nil {
		return f.RemoveFollowerFunc(ctx, channelID)
	}
	return nil
}

type fakeGateway struct {
	PushFunc       func(ctx context.Context, to, text string) error
	GetProfileFunc func(ctx context.Context, userID string) (string, error)

	pushed []string
}

func (f *fakeGateway) Push(ctx context.Context, to, text string) error {
	f.pushed = append(f.pushed, text)
	if f.PushFunc != nil {
		return f.PushFunc(ctx, to, text)
	}
	return nil
}

func (f *fakeGateway) GetProfile(ctx context.Context, userID string) (string, error) {
	if f.GetProfileFunc != nil {
		return f.GetProfileFunc(ctx, userID)
	}
	return "", nil
}
