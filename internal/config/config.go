package config

import (
	"os"
	"strconv"
	"time"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort          string
	LogLevel            string
	SupabaseURL         string
	SupabaseKey         string
	SupabaseJWTSecret   string
	CheckoutFunctionURL string
	WordLimit           int
	GenerationStubDelay time.Duration
	HTTPTimeout         time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	supabaseURL := getEnvOrDefault("SUPABASE_URL", "")

	checkoutURL := getEnvOrDefault("CHECKOUT_FUNCTION_URL", "")
	if checkoutURL == "" && supabaseURL != "" {
		checkoutURL = supabaseURL + "/functions/v1/create-checkout"
	}

	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:          getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:         supabaseURL,
		SupabaseKey:         getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		SupabaseJWTSecret:   getEnvOrDefault("SUPABASE_JWT_SECRET", ""),
		CheckoutFunctionURL: checkoutURL,
		WordLimit:           getEnvIntOrDefault("WORD_LIMIT", domain.WordLimit),
		GenerationStubDelay: getEnvDurationMsOrDefault("GENERATION_STUB_DELAY_MS", 3*time.Second),
		HTTPTimeout:         getEnvDurationMsOrDefault("HTTP_TIMEOUT_MS", 10*time.Second),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSupabaseJWTSecret returns the project JWT secret used for local token validation
func (c *AppConfig) GetSupabaseJWTSecret() string {
	return c.SupabaseJWTSecret
}

// GetCheckoutFunctionURL returns the checkout function endpoint
func (c *AppConfig) GetCheckoutFunctionURL() string {
	return c.CheckoutFunctionURL
}

// GetWordLimit returns the maximum word count accepted by generate
func (c *AppConfig) GetWordLimit() int {
	return c.WordLimit
}

// GetGenerationStubDelay returns the placeholder generation delay
func (c *AppConfig) GetGenerationStubDelay() time.Duration {
	return c.GenerationStubDelay
}

// GetHTTPTimeout returns the timeout applied to outbound HTTP calls
func (c *AppConfig) GetHTTPTimeout() time.Duration {
	return c.HTTPTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationMsOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue >= 0 {
			return time.Duration(intValue) * time.Millisecond
		}
	}
	return defaultValue
}
