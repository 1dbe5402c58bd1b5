package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Service configuration
	ServiceHost         string
	ServicePort         string
	InternalServicePort string

	// Database configuration
	DatabaseURL      string
	DatabaseMaxConns int

	// Redis configuration
	RedisURL      string
	RedisMaxConns int

	// Logging configuration
	LogLevel string

	// Product lookup (Open Food Facts)
	ProductLookupURL string
	ProductSearchURL string
	LookupCacheTTL   time.Duration

	// Expiration reminders
	ReminderInterval time.Duration
	ReminderSecret   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Service configuration
	cfg.ServiceHost = os.Getenv("FRIDGE_SERVICE_HOST")
	if cfg.ServiceHost == "" {
		cfg.ServiceHost = "0.0.0.0"
	}

	cfg.ServicePort = os.Getenv("FRIDGE_SERVICE_PORT")
	if cfg.ServicePort == "" {
		cfg.ServicePort = "8080"
	}

	cfg.InternalServicePort = os.Getenv("FRIDGE_INTERNAL_PORT")
	if cfg.InternalServicePort == "" {
		cfg.InternalServicePort = "8081"
	}

	// Database configuration
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	maxConnStr := os.Getenv("DATABASE_MAX_CONNECTIONS")
	if maxConnStr == "" {
		cfg.DatabaseMaxConns = 10
	} else {
		maxConns, err := strconv.Atoi(maxConnStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DATABASE_MAX_CONNECTIONS: %v", err)
		}
		cfg.DatabaseMaxConns = maxConns
	}

	// Redis configuration
	cfg.RedisURL = os.Getenv("REDIS_URL")
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	redisMaxConnStr := os.Getenv("REDIS_MAX_CONNECTIONS")
	if redisMaxConnStr == "" {
		cfg.RedisMaxConns = 10
	} else {
		redisMaxConns, err := strconv.Atoi(redisMaxConnStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_MAX_CONNECTIONS: %v", err)
		}
		cfg.RedisMaxConns = redisMaxConns
	}

	// Logging configuration
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Product lookup configuration
	cfg.ProductLookupURL = os.Getenv("OFF_PRODUCT_URL")
	if cfg.ProductLookupURL == "" {
		cfg.ProductLookupURL = "https://world.openfoodfacts.org/api/v0/product"
	}

	cfg.ProductSearchURL = os.Getenv("OFF_SEARCH_URL")
	if cfg.ProductSearchURL == "" {
		cfg.ProductSearchURL = "https://jp.openfoodfacts.org/cgi/search.pl"
	}

	lookupTTL := os.Getenv("LOOKUP_CACHE_TTL")
	if lookupTTL == "" {
		cfg.LookupCacheTTL = 6 * time.Hour
	} else {
		ttl, err := time.ParseDuration(lookupTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid LOOKUP_CACHE_TTL: %v", err)
		}
		cfg.LookupCacheTTL = ttl
	}

	// Reminder configuration
	reminderInterval := os.Getenv("REMINDER_INTERVAL")
	if reminderInterval == "" {
		cfg.ReminderInterval = 24 * time.Hour
	} else {
		interval, err := time.ParseDuration(reminderInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_INTERVAL: %v", err)
		}
		cfg.ReminderInterval = interval
	}

	cfg.ReminderSecret = os.Getenv("REMINDER_SECRET")

	return cfg, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	// Validate database URL format
	if !strings.HasPrefix(c.DatabaseURL, "postgresql://") && !strings.HasPrefix(c.DatabaseURL, "postgres://") {
		return fmt.Errorf("DATABASE_URL must start with postgresql:// or postgres://")
	}

	// Validate Redis URL format
	if !strings.HasPrefix(c.RedisURL, "redis://") {
		return fmt.Errorf("REDIS_URL must start with redis://")
	}

	// Validate numeric ranges
	if c.DatabaseMaxConns < 1 || c.DatabaseMaxConns > 100 {
		return fmt.Errorf("DATABASE_MAX_CONNECTIONS must be between 1 and 100")
	}

	if c.RedisMaxConns < 1 || c.RedisMaxConns > 100 {
		return fmt.Errorf("REDIS_MAX_CONNECTIONS must be between 1 and 100")
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", "))
	}

	if !strings.HasPrefix(c.ProductLookupURL, "http://") && !strings.HasPrefix(c.ProductLookupURL, "https://") {
		return fmt.Errorf("OFF_PRODUCT_URL must be an http(s) URL")
	}

	if !strings.HasPrefix(c.ProductSearchURL, "http://") && !strings.HasPrefix(c.ProductSearchURL, "https://") {
		return fmt.Errorf("OFF_SEARCH_URL must be an http(s) URL")
	}

	if c.ReminderInterval < time.Minute {
		return fmt.Errorf("REMINDER_INTERVAL must be at least 1m")
	}

	return nil
}

// String returns a string representation of the config (for logging, without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Host: %s, Port: %s, InternalPort: %s, LogLevel: %s, DB: %s, Redis: %s, ReminderInterval: %s}",
		c.ServiceHost, c.ServicePort, c.InternalServicePort, c.LogLevel,
		maskURL(c.DatabaseURL), maskURL(c.RedisURL), c.ReminderInterval,
	)
}

// maskURL masks sensitive information in URLs
func maskURL(url string) string {
	if strings.Contains(url, "@") {
		parts := strings.Split(url, "@")
		if len(parts) >= 2 {
			return parts[0][:strings.Index(parts[0], "://")+3] + "***@" + parts[1]
		}
	}
	return url
}
