package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"basket-pricer/internal/promotion"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Metrics   MetricsConfig
	Promotion PromotionConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// MetricsConfig holds Prometheus configuration.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// PromotionConfig holds the catalog codes and thresholds of the built-in
// promotions. Defaults are the promotion package constants.
type PromotionConfig struct {
	MultiPackProductID   string
	BulkProductID        string
	BulkThreshold        int
	BulkRate             decimal.Decimal
	GiftTriggerProductID string
	GiftProductID        string
	GiftProductName      string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Metrics: MetricsConfig{
			Enabled:   getEnvAsBool("METRICS_ENABLED", true),
			Namespace: getEnv("METRICS_NAMESPACE", "basket_pricer"),
		},
		Promotion: promotionFromEnv(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadPromotion loads only the promotion configuration, for tools that do
// not run the HTTP server. A .env file is read first when present.
func LoadPromotion() (*PromotionConfig, error) {
	_ = godotenv.Load()

	cfg := promotionFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("promotion configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func promotionFromEnv() PromotionConfig {
	return PromotionConfig{
		MultiPackProductID:   getEnv("PROMO_MULTIPACK_PRODUCT_ID", promotion.MultiPackProductID),
		BulkProductID:        getEnv("PROMO_BULK_PRODUCT_ID", promotion.BulkProductID),
		BulkThreshold:        getEnvAsInt("PROMO_BULK_THRESHOLD", promotion.BulkThreshold),
		BulkRate:             getEnvAsDecimal("PROMO_BULK_RATE", promotion.DefaultBulkRate()),
		GiftTriggerProductID: getEnv("PROMO_GIFT_TRIGGER_ID", promotion.GiftTriggerProductID),
		GiftProductID:        getEnv("PROMO_GIFT_PRODUCT_ID", promotion.GiftProductID),
		GiftProductName:      getEnv("PROMO_GIFT_PRODUCT_NAME", promotion.GiftProductName),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace is required when metrics are enabled")
	}

	return c.Promotion.Validate()
}

// Validate validates the promotion configuration.
func (c *PromotionConfig) Validate() error {
	if c.MultiPackProductID == "" {
		return fmt.Errorf("multi-pack product ID is required")
	}

	if c.BulkProductID == "" {
		return fmt.Errorf("bulk product ID is required")
	}

	if c.GiftTriggerProductID == "" {
		return fmt.Errorf("gift trigger product ID is required")
	}

	if c.GiftProductID == "" {
		return fmt.Errorf("gift product ID is required")
	}

	if c.BulkThreshold < 0 {
		return fmt.Errorf("bulk threshold cannot be negative: %d", c.BulkThreshold)
	}

	if c.BulkRate.IsNegative() || c.BulkRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("invalid bulk rate: %s (must be between 0 and 1)", c.BulkRate)
	}

	return nil
}

// Codes converts the configuration into promotion rule codes.
func (c *PromotionConfig) Codes() promotion.Codes {
	return promotion.Codes{
		MultiPackProductID:   c.MultiPackProductID,
		BulkProductID:        c.BulkProductID,
		BulkThreshold:        c.BulkThreshold,
		BulkRate:             c.BulkRate,
		GiftTriggerProductID: c.GiftTriggerProductID,
		GiftProductID:        c.GiftProductID,
		GiftProductName:      c.GiftProductName,
	}
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDecimal retrieves an environment variable as a decimal or returns a default value.
func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decValue, err := decimal.NewFromString(value); err == nil {
			return decValue
		}
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable or returns a default value.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
