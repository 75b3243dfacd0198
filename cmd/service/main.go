package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatorder/config"
	"chatorder/internal/channel"
	"chatorder/internal/database"
	"chatorder/internal/logger"
	"chatorder/internal/producer"
	"chatorder/internal/repository"
	"chatorder/internal/service"
	"chatorder/internal/transport/http/handlers"
	"chatorder/internal/transport/http/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	gateway := channel.NewClient(cfg.Channel.APIBase, cfg.Channel.AccessToken)

	// The event bus is wired so the notifier physically cannot run before
	// the triggering transaction commits: events either go to Kafka for a
	// separate consumer process, or to an in-process dispatcher invoked by
	// the service layer only after its transaction returns.
	var (
		events      service.EventBus
		kafkaEvents *producer.OrderEventProducer
	)
	switch cfg.Notify.Mode {
	case config.NotifyModeKafka:
		kafkaEvents = producer.NewOrderEventProducer(cfg.Notify.KafkaBrokers, cfg.Notify.KafkaTopic)
		events = kafkaEvents
		log.Info("notifications via kafka", zap.String("topic", cfg.Notify.KafkaTopic))
	default:
		notifier := channel.NewNotifier(gateway, log)
		events = channel.NewDispatcher(notifier)
		log.Info("notifications via in-process dispatcher")
	}

	customerSvc := service.NewCustomerService(repos, log)
	catalogSvc := service.NewCatalogService(repos)
	cartSvc := service.NewCartService(repos, log)
	orderSvc := service.NewOrderService(repos, events, log)

	r := router.Router(router.Deps{
		Catalog:       catalogSvc,
		Carts:         cartSvc,
		Orders:        orderSvc,
		Customers:     customerSvc,
		Gateway:       gateway,
		ChannelSecret: cfg.Channel.Secret,
		Admin: handlers.AdminConfig{
			Username:  cfg.Admin.Username,
			Password:  cfg.Admin.Password,
			JWTSecret: cfg.Admin.JWTSecret,
			TokenTTL:  cfg.Admin.TokenTTL,
		},
		Log: log,
	})

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	if kafkaEvents != nil {
		_ = kafkaEvents.Close()
	}
	log.Info("HTTP server stopped gracefully")
}
