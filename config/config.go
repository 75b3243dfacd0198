package config

import (
	"os"
	"strings"
	"time"

	"chatorder/internal/database"

	"go.uber.org/zap"
)

const (
	NotifyModeDirect = "direct"
	NotifyModeKafka  = "kafka"
)

type Config struct {
	Port string
	DB   DB

	Channel Channel
	Admin   Admin
	Notify  Notify
}

type DB struct {
	database.Config
}

// Channel configures the messaging-platform gateway. The client is always
// constructed explicitly from this and handed to its consumers; there is no
// process-wide singleton.
type Channel struct {
	APIBase     string
	AccessToken string
	Secret      string
}

type Admin struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

type Notify struct {
	Mode         string // direct | kafka
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
}

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		Channel: Channel{
			APIBase:     getEnvDefault("CHANNEL_API_BASE", "https://api.line.me"),
			AccessToken: getEnv("CHANNEL_ACCESS_TOKEN", log),
			Secret:      getEnv("CHANNEL_SECRET", log),
		},
		Admin: Admin{
			Username:  getEnv("ADMIN_USERNAME", log),
			Password:  getEnv("ADMIN_PASSWORD", log),
			JWTSecret: getEnv("JWT_SECRET", log),
			TokenTTL:  durationDefault(os.Getenv("ADMIN_TOKEN_TTL"), 12*time.Hour),
		},
		Notify: Notify{
			Mode:         getEnvDefault("NOTIFY_MODE", NotifyModeDirect),
			KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			KafkaTopic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "order-events"),
			KafkaGroupID: getEnvDefault("KAFKA_GROUP_ID", "chatorder-notifier"),
		},
	}

	if cfg.Notify.Mode == NotifyModeKafka && len(cfg.Notify.KafkaBrokers) == 0 {
		log.Error("NOTIFY_MODE=kafka requires KAFKA_BROKERS")
		panic("NOTIFY_MODE=kafka requires KAFKA_BROKERS")
	}

	return cfg
}

// NotifierConfig is the subset the notifier process needs; it has no
// database access of its own.
type NotifierConfig struct {
	Channel Channel
	Notify  Notify
}

func LoadNotifier(log *zap.Logger) *NotifierConfig {
	cfg := &NotifierConfig{
		Channel: Channel{
			APIBase:     getEnvDefault("CHANNEL_API_BASE", "https://api.line.me"),
			AccessToken: getEnv("CHANNEL_ACCESS_TOKEN", log),
			Secret:      getEnvDefault("CHANNEL_SECRET", ""),
		},
		Notify: Notify{
			Mode:         NotifyModeKafka,
			KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			KafkaTopic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "order-events"),
			KafkaGroupID: getEnvDefault("KAFKA_GROUP_ID", "chatorder-notifier"),
		},
	}

	if len(cfg.Notify.KafkaBrokers) == 0 {
		log.Error("notifier requires KAFKA_BROKERS")
		panic("notifier requires KAFKA_BROKERS")
	}

	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func durationDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
