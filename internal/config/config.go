// Package config loads the bot configuration from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

var ErrMissingToken = errors.New("TG_TOKEN environment variable is required")

// Config is everything the bot needs from the environment. Only the bot
// token is mandatory; every sink and the operator are optional.
type Config struct {
	Token        string
	AdminID      int64 // 0 means no operator configured
	OrdersFile   string
	CatalogFile  string // empty means use the embedded catalog
	DatabaseURL  string
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the configuration. A non-numeric ADMIN_ID is treated as
// absent, not an error: a misconfigured operator degrades to skipped
// notifications.
func Load() (Config, error) {
	cfg := Config{
		Token:       os.Getenv("TG_TOKEN"),
		OrdersFile:  getEnv("ORDERS_FILE", "orders.txt"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "storefront-orders"),
	}
	if cfg.Token == "" {
		return Config{}, ErrMissingToken
	}
	if raw := os.Getenv("ADMIN_ID"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.AdminID = id
		}
	}
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		cfg.KafkaBrokers = strings.Split(raw, ",")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
