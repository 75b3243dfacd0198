package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatorder/config"
	"chatorder/internal/channel"
	"chatorder/internal/consumer"
	"chatorder/internal/logger"

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

	cfg := config.LoadNotifier(log)

	gateway := channel.NewClient(cfg.Channel.APIBase, cfg.Channel.AccessToken)
	notifier := channel.NewNotifier(gateway, log)

	cons := consumer.NewKafkaOrderConsumer(cfg.Notify.KafkaBrokers, cfg.Notify.KafkaGroupID, cfg.Notify.KafkaTopic, notifier, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := cons.Run(ctx); err != nil {
			log.Error("consumer stopped", zap.Error(err))
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info("shutdown signal received")
	cancel()
	_ = cons.Close()
	time.Sleep(200 * time.Millisecond)
}
