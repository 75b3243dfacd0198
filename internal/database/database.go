package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func ConnectDB(cfg *Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("host", cfg.Host), zap.Error(err))
	}
	log.Info("database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name))
	return db
}

func CloseDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to get sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("failed to close database", zap.Error(err))
		return
	}
	log.Info("database connection closed")
}
