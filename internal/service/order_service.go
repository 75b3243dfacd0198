package service

import (
	"context"
	"fmt"
	"time"

	"chatorder/internal/models"
	"chatorder/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderService struct {
	repo   *repository.Repository
	events EventBus
	log    *zap.Logger
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

func (s *orderService) Checkout(ctx context.Context, customerID uuid.UUID, note string) (*models.Order, error) {
	cart, err := s.repo.Carts.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	customer, err := s.repo.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	// All items in a cart belong to one shop (the add path enforces it),
	// so the first item decides the order's shop.
	shopID := cart.Items[0].Product.ShopID

	var (
		now     = s.now()
		total   int64
		itemIDs = make([]uuid.UUID, 0, len(cart.Items))
		itemsDB = make([]models.OrderItem, 0, len(cart.Items))
		evItems = make([]OrderItemEvent, 0, len(cart.Items))
	)
	for _, it := range cart.Items {
		price := it.Product.Price
		itemIDs = append(itemIDs, it.ID)
		total += price * int64(it.Quantity)
		itemsDB = append(itemsDB, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
			CreatedAt: now,
		})
		evItems = append(evItems, OrderItemEvent{
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Price:       price,
			Subtotal:    price * int64(it.Quantity),
		})
	}

	order := &models.Order{
		CustomerID:  customerID,
		ShopID:      shopID,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
		Note:        optional(note),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// All-or-nothing: order header, order lines and the cart clearing
	// commit together or not at all. Only the snapshotted cart rows are
	// deleted; a row the other channel commits meanwhile is not ordered
	// here and must survive the clearing.
	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo, cr repository.CartRepo) error {
		if err := or.Create(ctx, order); err != nil {
			return err
		}
		for i := range itemsDB {
			itemsDB[i].OrderID = order.ID
		}
		if err := ir.BulkCreate(ctx, itemsDB); err != nil {
			return err
		}
		if _, err := cr.DeleteItemsByID(ctx, itemIDs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	order.Items = itemsDB

	if s.events != nil {
		ev := OrderCreatedEvent{
			OrderID:     order.ID,
			CustomerID:  customer.ID,
			ChannelID:   customer.ChannelID,
			ShopID:      shopID,
			ShopName:    s.shopName(ctx, shopID),
			Items:       evItems,
			TotalAmount: total,
			Note:        note,
			CreatedAt:   now,
		}
		if err := s.events.PublishOrderCreated(ctx, ev); err != nil {
			s.log.Warn("failed to publish order created event",
				zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error) {
	ord, err := s.repo.Orders.GetByIDForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	ordersPtr, _, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		CustomerID: &customerID,
		Limit:      100,
	})
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, len(ordersPtr))
	for i, o := range ordersPtr {
		orders[i] = *o
	}
	return orders, nil
}

func (s *orderService) Cancel(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, error) {
	ord, err := s.repo.Orders.GetByIDForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if !ord.Status.CanCustomerCancel() {
		return nil, ErrInvalidTransition
	}

	// Conditional write: if the shop moved the order past the observed
	// status in the meantime, zero rows match and the cancel is refused.
	n, err := s.repo.Orders.UpdateStatus(ctx, orderID, ord.Status, models.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}
	ord, err = s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.publishCancelled(ctx, ord)
	return ord, nil
}

func (s *orderService) SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}
	ord, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	// Administrators follow the same transition table as everyone else;
	// terminal states stay terminal.
	if !ord.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}
	from := ord.Status

	n, err := s.repo.Orders.UpdateStatus(ctx, orderID, from, status)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}
	ord, err = s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if status == models.OrderStatusCancelled {
		s.publishCancelled(ctx, ord)
	} else {
		s.publishStatusChanged(ctx, ord, from, status)
	}
	return ord, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	ord, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	ordersPtr, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	orders := make([]models.Order, len(ordersPtr))
	for i, o := range ordersPtr {
		orders[i] = *o
	}
	return orders, total, nil
}

func (s *orderService) publishCancelled(ctx context.Context, ord *models.Order) {
	if s.events == nil || ord == nil {
		return
	}
	ev := OrderCancelledEvent{
		OrderID:     ord.ID,
		ChannelID:   s.channelID(ctx, ord.CustomerID),
		ShopName:    s.shopName(ctx, ord.ShopID),
		TotalAmount: ord.TotalAmount,
		CancelledAt: s.now(),
	}
	if err := s.events.PublishOrderCancelled(ctx, ev); err != nil {
		s.log.Warn("failed to publish order cancelled event",
			zap.String("order_id", ord.ID.String()), zap.Error(err))
	}
}

func (s *orderService) publishStatusChanged(ctx context.Context, ord *models.Order, from, to models.OrderStatus) {
	if s.events == nil || ord == nil {
		return
	}
	ev := OrderStatusChangedEvent{
		OrderID:   ord.ID,
		ChannelID: s.channelID(ctx, ord.CustomerID),
		ShopName:  s.shopName(ctx, ord.ShopID),
		From:      from,
		To:        to,
		ChangedAt: s.now(),
	}
	if err := s.events.PublishOrderStatusChanged(ctx, ev); err != nil {
		s.log.Warn("failed to publish status changed event",
			zap.String("order_id", ord.ID.String()), zap.Error(err))
	}
}

// channelID and shopName enrich events outside the transaction; lookup
// failures degrade the notification, never the operation.
func (s *orderService) channelID(ctx context.Context, customerID uuid.UUID) string {
	c, err := s.repo.Customers.GetByID(ctx, customerID)
	if err != nil || c == nil {
		return ""
	}
	return c.ChannelID
}

func (s *orderService) shopName(ctx context.Context, shopID uuid.UUID) string {
	shop, err := s.repo.Shops.GetByID(ctx, shopID)
	if err != nil || shop == nil {
		return ""
	}
	return shop.Name
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
