// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Catalog     CatalogConfig
	Suggest     SuggestConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Log         LogConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type CatalogConfig struct {
	FixturePath    string // empty means the built-in demo catalog
	Watch          bool
	ReloadDebounce int // in milliseconds
	// DefaultLocation seeds new discovery views; empty means "All Locations".
	DefaultLocation string
}

type SuggestConfig struct {
	MinQueryLength int
	MaxCategories  int
	MaxListings    int
	DismissDelay   int // in milliseconds
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func (c SuggestConfig) DismissDelayDuration() time.Duration {
	return time.Duration(c.DismissDelay) * time.Millisecond
}

func (c CatalogConfig) ReloadDebounceDuration() time.Duration {
	return time.Duration(c.ReloadDebounce) * time.Millisecond
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Catalog: CatalogConfig{
			FixturePath:     getEnv("CATALOG_FIXTURE_PATH", ""),
			Watch:           getEnvAsBool("CATALOG_WATCH", false),
			ReloadDebounce:  getEnvAsInt("CATALOG_RELOAD_DEBOUNCE_MS", 250),
			DefaultLocation: getEnv("CATALOG_DEFAULT_LOCATION", ""),
		},
		Suggest: SuggestConfig{
			MinQueryLength: getEnvAsInt("SUGGEST_MIN_QUERY_LENGTH", 2),
			MaxCategories:  getEnvAsInt("SUGGEST_MAX_CATEGORIES", 2),
			MaxListings:    getEnvAsInt("SUGGEST_MAX_LISTINGS", 3),
			DismissDelay:   getEnvAsInt("SUGGEST_DISMISS_DELAY_MS", 200),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Catalog.Watch && c.Catalog.FixturePath == "" {
		return fmt.Errorf("CATALOG_WATCH requires CATALOG_FIXTURE_PATH")
	}

	if c.Suggest.MinQueryLength < 1 || c.Suggest.MaxCategories < 1 || c.Suggest.MaxListings < 1 {
		return fmt.Errorf("suggestion limits must be positive")
	}

	if c.Suggest.DismissDelay < 0 {
		return fmt.Errorf("SUGGEST_DISMISS_DELAY_MS must not be negative")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit must be positive")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}

	if c.Environment == "production" && len(c.CORS.AllowedOrigins) == 1 && c.CORS.AllowedOrigins[0] == "*" {
		return fmt.Errorf("wildcard CORS origin is not allowed in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
