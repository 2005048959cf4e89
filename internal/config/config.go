package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Products ProductsConfig
	Session  SessionConfig
	Logger   LoggerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	Host        string
	MetricsPort int
}

// ProductsConfig holds products API client configuration
type ProductsConfig struct {
	BaseURL  string // Base URL for the products API (e.g., https://products.internal)
	APIToken string // Bearer token for the products API
	Timeout  int    // Request timeout in seconds (default: 30)
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	CookieName    string
	Secret        string // HMAC signing key for the session cookie
	SecureCookies bool
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvAsInt("SERVER_PORT", 3000),
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			MetricsPort: getEnvAsInt("METRICS_PORT", 9090),
		},
		Products: ProductsConfig{
			BaseURL:  getEnv("PRODUCTS_API_BASE_URL", "http://localhost:3001"),
			APIToken: getEnv("PRODUCTS_API_TOKEN", ""),
			Timeout:  getEnvAsInt("PRODUCTS_API_TIMEOUT", 30),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "payment_pages_session"),
			Secret:        getEnv("SESSION_SECRET", ""),
			SecureCookies: getEnvAsBool("SECURE_COOKIES", true),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Products.APIToken == "" {
		return nil, fmt.Errorf("PRODUCTS_API_TOKEN is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
