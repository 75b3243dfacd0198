package service_test

import (
	"context"

	"chatorder/internal/models"
	"chatorder/internal/repository"
	"chatorder/internal/service"

	"github.com/google/uuid"
)

// Mocks for the repository interfaces, one func field per method.

type MockShopRepo struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	GetActiveByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	ListActiveFunc    func(ctx context.Context) ([]models.Shop, error)
}

func (m *MockShopRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShopRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	if m.GetActiveByIDFunc != nil {
		return m.GetActiveByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShopRepo) ListActive(ctx context.Context) ([]models.Shop, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type MockProductRepo struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetAvailableByIDFunc    func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListAvailableByShopFunc func(ctx context.Context, shopID uuid.UUID) ([]models.Product, error)
	UpdatePriceFunc         func(ctx context.Context, id uuid.UUID, price int64) error
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetAvailableByIDFunc != nil {
		return m.GetAvailableByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) ListAvailableByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error) {
	if m.ListAvailableByShopFunc != nil {
		return m.ListAvailableByShopFunc(ctx, shopID)
	}
	return nil, nil
}

func (m *MockProductRepo) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	if m.UpdatePriceFunc != nil {
		return m.UpdatePriceFunc(ctx, id, price)
	}
	return nil
}

type MockCustomerRepo struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByChannelIDFunc    func(ctx context.Context, channelID string) (*models.Customer, error)
	UpsertByChannelIDFunc func(ctx context.Context, channelID, name string) (*models.Customer, error)
	DeleteByChannelIDFunc func(ctx context.Context, channelID string) (int64, error)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCustomerRepo) GetByChannelID(ctx context.Context, channelID string) (*models.Customer, error) {
	if m.GetByChannelIDFunc != nil {
		return m.GetByChannelIDFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *MockCustomerRepo) UpsertByChannelID(ctx context.Context, channelID, name string) (*models.Customer, error) {
	if m.UpsertByChannelIDFunc != nil {
		return m.UpsertByChannelIDFunc(ctx, channelID, name)
	}
	return nil, nil
}

func (m *MockCustomerRepo) DeleteByChannelID(ctx context.Context, channelID string) (int64, error) {
	if m.DeleteByChannelIDFunc != nil {
		return m.DeleteByChannelIDFunc(ctx, channelID)
	}
	return 0, nil
}

type MockCartRepo struct {
	GetOrCreateFunc        func(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	GetByCustomerFunc      func(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	UpsertItemFunc         func(ctx context.Context, cartID, productID uuid.UUID, quantity int32) error
	GetItemForCustomerFunc func(ctx context.Context, itemID, customerID uuid.UUID) (*models.CartItem, error)
	UpdateItemQuantityFunc func(ctx context.Context, itemID uuid.UUID, quantity int32) error
	DeleteItemFunc         func(ctx context.Context, itemID uuid.UUID) (int64, error)
	DeleteItemsByIDFunc    func(ctx context.Context, itemIDs []uuid.UUID) (int64, error)
}

func (m *MockCartRepo) GetOrCreate(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockCartRepo) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	if m.GetByCustomerFunc != nil {
		return m.GetByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockCartRepo) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int32) error {
	if m.UpsertItemFunc != nil {
		return m.UpsertItemFunc(ctx, cartID, productID, quantity)
	}
	return nil
}

func (m *MockCartRepo) GetItemForCustomer(ctx context.Context, itemID, customerID uuid.UUID) (*models.CartItem, error) {
	if m.GetItemForCustomerFunc != nil {
		return m.GetItemForCustomerFunc(ctx, itemID, customerID)
	}
	return nil, nil
}

func (m *MockCartRepo) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int32) error {
	if m.UpdateItemQuantityFunc != nil {
		return m.UpdateItemQuantityFunc(ctx, itemID, quantity)
	}
	return nil
}

func (m *MockCartRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return 0, nil
}

func (m *MockCartRepo) DeleteItemsByID(ctx context.Context, itemIDs []uuid.UUID) (int64, error) {
	if m.DeleteItemsByIDFunc != nil {
		return m.DeleteItemsByIDFunc(ctx, itemIDs)
	}
	return 0, nil
}

type MockOrderRepo struct {
	CreateFunc             func(ctx context.Context, o *models.Order) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForCustomerFunc func(ctx context.Context, id, customerID uuid.UUID) (*models.Order, error)
	UpdateStatusFunc       func(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (int64, error)
	ListFunc               func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
	WithTxFunc             func(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo, txCarts repository.CartRepo) error) error
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*models.Order, error) {
	if m.GetByIDForCustomerFunc != nil {
		return m.GetByIDForCustomerFunc(ctx, id, customerID)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, from, to)
	}
	return 1, nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo, txCarts repository.CartRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m, &MockOrderItemRepo{}, &MockCartRepo{})
}

type MockOrderItemRepo struct {
	BulkCreateFunc   func(ctx context.Context, items []models.OrderItem) error
	GetByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

type MockEventBus struct {
	PublishOrderCreatedFunc       func(ctx context.Context, e service.OrderCreatedEvent) error
	PublishOrderStatusChangedFunc func(ctx context.Context, e service.OrderStatusChangedEvent) error
	PublishOrderCancelledFunc     func(ctx context.Context, e service.OrderCancelledEvent) error
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	if m.PublishOrderCreatedFunc != nil {
		return m.PublishOrderCreatedFunc(ctx, e)
	}
	return nil
}

func (m *MockEventBus) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	if m.PublishOrderStatusChangedFunc != nil {
		return m.PublishOrderStatusChangedFunc(ctx, e)
	}
	return nil
}

func (m *MockEventBus) PublishOrderCancelled(ctx context.Context, e service.OrderCancelledEvent) error {
	if m.PublishOrderCancelledFunc != nil {
		return m.PublishOrderCancelledFunc(ctx, e)
	}
	return nil
}

func newRepository(shops *MockShopRepo, products *MockProductRepo, customers *MockCustomerRepo, carts *MockCartRepo, orders *MockOrderRepo, items *MockOrderItemRepo) *repository.Repository {
	if shops == nil {
		shops = &MockShopRepo{}
	}
	if products == nil {
		products = &MockProductRepo{}
	}
	if customers == nil {
		customers = &MockCustomerRepo{}
	}
	if carts == nil {
		carts = &MockCartRepo{}
	}
	if orders == nil {
		orders = &MockOrderRepo{}
	}
	if items == nil {
		items = &MockOrderItemRepo{}
	}
	return &repository.Repository{
		Shops:      shops,
		Products:   products,
		Customers:  customers,
		Carts:      carts,
		Orders:     orders,
		OrderItems: items,
	}
}
