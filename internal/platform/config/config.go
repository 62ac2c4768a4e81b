package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Record store backends.
const (
	RecordStorePostgres = "postgres"
	RecordStoreMemory   = "memory"
)

// Rate limiter backends.
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogFormat     string
	DatabaseURL   string
	EnableDBCheck bool

	RecordStore    string
	MigrationsPath string
	RecordPageSize int

	PortfolioConcurrency int

	JWTSecret string
	JWTIssuer string

	RateLimit      string
	RateLimitStore string
	RedisURL       string

	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RECORD_STORE", RecordStorePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RECORD_PAGE_SIZE", 200)
	v.SetDefault("PORTFOLIO_CONCURRENCY", 8)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("RATE_LIMIT_STORE", RateLimitStoreMemory)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("METRICS_ENABLED", true)

	// Environment variables override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		LogFormat:            strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		DatabaseURL:          v.GetString("PGSQL_URL"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		RecordStore:          strings.ToLower(strings.TrimSpace(v.GetString("RECORD_STORE"))),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		RecordPageSize:       v.GetInt("RECORD_PAGE_SIZE"),
		PortfolioConcurrency: v.GetInt("PORTFOLIO_CONCURRENCY"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		RateLimitStore:       strings.ToLower(strings.TrimSpace(v.GetString("RATE_LIMIT_STORE"))),
		RedisURL:             v.GetString("REDIS_URL"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MetricsEnabled:       v.GetBool("METRICS_ENABLED"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.warn()
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.RecordStore {
	case RecordStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when RECORD_STORE is %q", RecordStorePostgres)
		}
	case RecordStoreMemory:
	default:
		return fmt.Errorf("unsupported RECORD_STORE %q", c.RecordStore)
	}

	switch c.RateLimitStore {
	case RateLimitStoreMemory:
	case RateLimitStoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when RATE_LIMIT_STORE is %q", RateLimitStoreRedis)
		}
	default:
		return fmt.Errorf("unsupported RATE_LIMIT_STORE %q", c.RateLimitStore)
	}

	if c.RecordPageSize <= 0 {
		return fmt.Errorf("RECORD_PAGE_SIZE must be positive, got %d", c.RecordPageSize)
	}
	if c.PortfolioConcurrency <= 0 {
		return fmt.Errorf("PORTFOLIO_CONCURRENCY must be positive, got %d", c.PortfolioConcurrency)
	}
	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) warn() {
	if c.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if c.JWTIssuer == "" {
		slog.Warn("JWT_ISSUER not set. Token issuer will not be checked.")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
