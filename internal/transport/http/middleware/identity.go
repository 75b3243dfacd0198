package middleware

import (
	"net/http"

	"chatorder/internal/service"
	"chatorder/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys for the resolved customer identity.
const (
	CtxCustomerID = "customer_id"
	CtxChannelID  = "channel_id"
)

// HeaderChannelID carries the messaging-platform identifier on web
// requests. The query parameter form exists for bot-originated deep links
// that cannot set headers.
const (
	HeaderChannelID = "X-Channel-Id"
	QueryChannelID  = "line_id"
)

// CustomerIdentity resolves the channel identifier to a customer record,
// registering one on first contact, and injects the customer id into the
// request context. Requests without an identifier are rejected.
func CustomerIdentity(customers service.CustomerService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		channelID := c.GetHeader(HeaderChannelID)
		if channelID == "" {
			channelID = c.Query(QueryChannelID)
		}
		if channelID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing channel identifier"))
			return
		}

		customer, err := customers.Identify(c.Request.Context(), channelID)
		if err != nil {
			log.Warn("identify failed", zap.String("channel_id", channelID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("unknown customer"))
			return
		}

		c.Set(CtxCustomerID, customer.ID)
		c.Set(CtxChannelID, channelID)
		c.Next()
	}
}

// CustomerID reads the identity set by CustomerIdentity.
func CustomerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxCustomerID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
