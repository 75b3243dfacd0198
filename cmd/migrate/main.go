package main

import (
	"context"
	"os"

	"chatorder/config"
	"chatorder/internal/database"
	"chatorder/internal/logger"
	"chatorder/internal/migrate"

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

	ctx := context.Background()

	opts := migrate.DefaultMigrateOptions()

	if err := migrate.MigrateDB(ctx, db, log, opts); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration completed")
}
