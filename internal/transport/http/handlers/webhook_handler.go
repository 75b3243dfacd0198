package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"chatorder/internal/channel"
	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChannelGateway is the outbound side of the messaging platform used while
// handling inbound webhook events.
type ChannelGateway interface {
	Push(ctx context.Context, to, text string) error
	GetProfile(ctx context.Context, userID string) (string, error)
}

type WebhookHandler struct {
	secret    string
	gateway   ChannelGateway
	customers service.CustomerService
	carts     service.CartService
	orders    service.OrderService
	catalog   service.CatalogService
	log       *zap.Logger
}

func NewWebhookHandler(
	secret string,
	gateway ChannelGateway,
	customers service.CustomerService,
	carts service.CartService,
	orders service.OrderService,
	catalog service.CatalogService,
	log *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		secret:    secret,
		gateway:   gateway,
		customers: customers,
		carts:     carts,
		orders:    orders,
		catalog:   catalog,
		log:       log,
	}
}

// Handle verifies the body signature and processes each inbound event.
// Event-level failures are logged, never surfaced: the platform retries
// non-200 responses and a poison event would wedge the whole webhook.
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("unreadable body", nil))
		return
	}
	if !channel.ValidateSignature(h.secret, body, c.GetHeader(channel.SignatureHeader)) {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("bad signature"))
		return
	}

	var req channel.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid webhook payload", nil))
		return
	}

	ctx := c.Request.Context()
	for _, ev := range req.Events {
		if err := h.handleEvent(ctx, ev); err != nil {
			h.log.Warn("webhook event failed",
				zap.String("type", ev.Type),
				zap.String("channel_id", ev.Source.UserID),
				zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WebhookHandler) handleEvent(ctx context.Context, ev channel.Event) error {
	channelID := ev.Source.UserID
	if channelID == "" {
		return nil
	}

	switch ev.Type {
	case channel.EventFollow:
		return h.onFollow(ctx, channelID)
	case channel.EventUnfollow:
		return h.customers.RemoveFollower(ctx, channelID)
	case channel.EventMessage:
		if ev.Message == nil || ev.Message.Type != "text" {
			return nil
		}
		return h.onText(ctx, channelID, ev.Message.Text)
	case channel.EventPostback:
		action, params := ev.Postback.Decode()
		return h.onPostback(ctx, channelID, action, params.Get("order_id"))
	}
	return nil
}

func (h *WebhookHandler) onFollow(ctx context.Context, channelID string) error {
	name, err := h.gateway.GetProfile(ctx, channelID)
	if err != nil {
		h.log.Warn("profile fetch failed", zap.String("channel_id", channelID), zap.Error(err))
	}
	if _, err := h.customers.RegisterFollower(ctx, channelID, name); err != nil {
		return err
	}
	return h.gateway.Push(ctx, channelID, channel.HelpText())
}

func (h *WebhookHandler) onText(ctx context.Context, channelID, text string) error {
	customer, err := h.customers.Identify(ctx, channelID)
	if err != nil {
		return err
	}

	if strings.Contains(text, "注文") || strings.Contains(text, "履歴") {
		orders, err := h.orders.ListOrders(ctx, customer.ID)
		if err != nil {
			return err
		}
		return h.gateway.Push(ctx, channelID, channel.OrderListText(orders))
	}
	return h.gateway.Push(ctx, channelID, channel.HelpText())
}

func (h *WebhookHandler) onPostback(ctx context.Context, channelID, action, rawOrderID string) error {
	customer, err := h.customers.Identify(ctx, channelID)
	if err != nil {
		return err
	}
	orderID, err := uuid.Parse(rawOrderID)
	if err != nil {
		return h.gateway.Push(ctx, channelID, "注文が見つかりませんでした。")
	}

	switch action {
	case channel.ActionOrderDetail:
		order, err := h.orders.GetOrder(ctx, customer.ID, orderID)
		if err != nil {
			return h.gateway.Push(ctx, channelID, "注文が見つかりませんでした。")
		}
		names := make(map[uuid.UUID]string, len(order.Items))
		for _, it := range order.Items {
			if p, err := h.catalog.GetProduct(ctx, it.ProductID); err == nil {
				names[it.ProductID] = p.Name
			}
		}
		return h.gateway.Push(ctx, channelID, channel.OrderDetailText(order, names))
	case channel.ActionCancelOrder:
		// Success is announced through the notification pipeline, so only
		// failures need an immediate reply here.
		if _, err := h.orders.Cancel(ctx, customer.ID, orderID); err != nil {
			return h.gateway.Push(ctx, channelID, "この注文はキャンセルできません。")
		}
		return nil
	}
	return nil
}
