package router

import (
	"chatorder/internal/service"
	"chatorder/internal/transport/http/handlers"
	"chatorder/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog   service.CatalogService
	Carts     service.CartService
	Orders    service.OrderService
	Customers service.CustomerService
	Gateway   handlers.ChannelGateway

	ChannelSecret string
	Admin         handlers.AdminConfig

	Log *zap.Logger
}

func Router(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Prometheus())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.HeaderChannelID},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	catalogHandler := handlers.NewCatalogHandler(d.Catalog, d.Log)
	cartHandler := handlers.NewCartHandler(d.Carts, d.Log)
	orderHandler := handlers.NewOrderHandler(d.Orders, d.Log)
	adminHandler := handlers.NewAdminHandler(d.Admin, d.Orders, d.Log)
	webhookHandler := handlers.NewWebhookHandler(
		d.ChannelSecret, d.Gateway, d.Customers, d.Carts, d.Orders, d.Catalog, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The messaging platform probes the callback URL with GET when it is
	// registered; events arrive as signed POSTs.
	r.GET("/callback", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.POST("/callback", webhookHandler.Handle)

	r.GET("/shops", catalogHandler.ListShops)
	r.GET("/shops/:id", catalogHandler.GetShop)

	// Customer surface: every route is scoped by the resolved identity.
	api := r.Group("/", middleware.CustomerIdentity(d.Customers, d.Log))
	{
		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart", cartHandler.Mutate)
		api.POST("/orders", orderHandler.Checkout)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/cancel", orderHandler.Cancel)
	}

	r.POST("/admin/login", adminHandler.Login)
	admin := r.Group("/admin", middleware.AdminAuth(d.Admin.JWTSecret))
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/:id", adminHandler.GetOrder)
		admin.PATCH("/orders/:id/status", adminHandler.UpdateStatus)
	}

	return r
}
