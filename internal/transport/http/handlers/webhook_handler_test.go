package handlers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatorder/internal/channel"
	"chatorder/internal/models"
	"chatorder/internal/service"
	"chatorder/internal/transport/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, h *handlers.WebhookHandler, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/callback", h.Handle)

	req := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader(body))
	req.Header.Set(channel.SignatureHeader, signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newWebhookHandler(gateway *fakeGateway, customers *fakeCustomers, orders *fakeOrders, catalog *fakeCatalog) *handlers.WebhookHandler {
	if gateway == nil {
		gateway = &fakeGateway{}
	}
	if customers == nil {
		customers = &fakeCustomers{}
	}
	if orders == nil {
		orders = &fakeOrders{}
	}
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	return handlers.NewWebhookHandler(testSecret, gateway, customers, &fakeCarts{}, orders, catalog, zap.NewNop())
}

func TestWebhook_RejectsBadSignature(t *testing.T) {
	h := newWebhookHandler(nil, nil, nil, nil)
	body := []byte(`{"events":[]}`)

	w := postWebhook(t, h, body, "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhook_FollowRegistersAndGreets(t *testing.T) {
	gateway := &fakeGateway{
		GetProfileFunc: func(ctx context.Context, userID string) (string, error) {
			return "Hanako", nil
		},
	}
	var registeredName string
	customers := &fakeCustomers{
		RegisterFollowerFunc: func(ctx context.Context, channelID, displayName string) (*models.Customer, error) {
			registeredName = displayName
			return &models.Customer{ID: uuid.New(), ChannelID: channelID, Name: displayName}, nil
		},
	}
	h := newWebhookHandler(gateway, customers, nil, nil)

	body := []byte(`{"events":[{"type":"follow","source":{"userId":"U1"}}]}`)
	w := postWebhook(t, h, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hanako", registeredName)
	require.Len(t, gateway.pushed, 1)
}

func TestWebhook_UnfollowRemovesCustomer(t *testing.T) {
	var removed string
	customers := &fakeCustomers{
		RemoveFollowerFunc: func(ctx context.Context, channelID string) error {
			removed = channelID
			return nil
		},
	}
	h := newWebhookHandler(nil, customers, nil, nil)

	body := []byte(`{"events":[{"type":"unfollow","source":{"userId":"U2"}}]}`)
	w := postWebhook(t, h, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "U2", removed)
}

func TestWebhook_TextCommandListsOrders(t *testing.T) {
	gateway := &fakeGateway{}
	orders := &fakeOrders{
		ListOrdersFunc: func(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
			return []models.Order{{ID: uuid.New(), Status: models.OrderStatusPending, TotalAmount: 1300}}, nil
		},
	}
	h := newWebhookHandler(gateway, nil, orders, nil)

	body := []byte(`{"events":[{"type":"message","source":{"userId":"U3"},"message":{"type":"text","text":"注文確認"}}]}`)
	w := postWebhook(t, h, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, gateway.pushed, 1)
	assert.True(t, strings.Contains(gateway.pushed[0], "¥1300"))
}

func TestWebhook_PostbackCancel(t *testing.T) {
	orderID := uuid.New()
	gateway := &fakeGateway{}
	var cancelledID uuid.UUID
	orders := &fakeOrders{
		CancelFunc: func(ctx context.Context, customerID, oID uuid.UUID) (*models.Order, error) {
			cancelledID = oID
			return &models.Order{ID: oID, Status: models.OrderStatusCancelled}, nil
		},
	}
	h := newWebhookHandler(gateway, nil, orders, nil)

	body := []byte(`{"events":[{"type":"postback","source":{"userId":"U4"},"postback":{"data":"action=cancel_order&order_id=` + orderID.String() + `"}}]}`)
	w := postWebhook(t, h, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, orderID, cancelledID)
	// Success is announced by the notification pipeline, not here.
	assert.Empty(t, gateway.pushed)
}

func TestWebhook_PostbackCancel_GatedOrderGetsReply(t *testing.T) {
	orderID := uuid.New()
	gateway := &fakeGateway{}
	orders := &fakeOrders{
		CancelFunc: func(ctx context.Context, customerID, oID uuid.UUID) (*models.Order, error) {
			return nil, service.ErrInvalidTransition
		},
	}
	h := newWebhookHandler(gateway, nil, orders, nil)

	body := []byte(`{"events":[{"type":"postback","source":{"userId":"U5"},"postback":{"data":"action=cancel_order&order_id=` + orderID.String() + `"}}]}`)
	w := postWebhook(t, h, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, gateway.pushed, 1)
	assert.Contains(t, gateway.pushed[0], "キャンセルできません")
}

func TestWebhook_PostbackOrderDetail(t *testing.T) {
	orderID := uuid.New()
	productID := uuid.New()
	gateway := &fakeGateway{}
	orders := &fakeOrders{
		GetOrderFunc: func(ctx context.Context, customerID, oID uuid.UUID) (*models.Order, error) {
			return &models.Order{
				ID:          oID,
				Status:      models.OrderStatusPending,
				TotalAmount: 500,
				Items:       []models.OrderItem{{OrderID: oID, ProductID: productID, Quantity: 1, Price: 500}},
			}, nil
		},
	}
	catalog := &fakeCatalog{
		GetProductFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			return &models.Product{ID: id, Name: "Latte"}, nil
		},
	}
	h := newWebhookHandler(gateway, nil, orders, catalog)

	body := []byte(`{"events":[{"type":"postback","source":{"userId":"U6"},"postback":{"data":"action=order_detail&order_id=` + orderID.String() + `"}}]}`)
	w := postWebhook(t, h, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, gateway.pushed, 1)
	assert.Contains(t, gateway.pushed[0], "Latte")
}
