package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RECORD_STORE", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, RecordStoreMemory, cfg.RecordStore)
	assert.Equal(t, 200, cfg.RecordPageSize)
	assert.Equal(t, 8, cfg.PortfolioConcurrency)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, RateLimitStoreMemory, cfg.RateLimitStore)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RECORD_STORE", "Postgres")
	t.Setenv("PGSQL_URL", "postgres://pm:pm@localhost:5432/pm")
	t.Setenv("PORT", "9090")
	t.Setenv("RECORD_PAGE_SIZE", "50")
	t.Setenv("PORTFOLIO_CONCURRENCY", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("RATE_LIMIT_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, RecordStorePostgres, cfg.RecordStore)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 50, cfg.RecordPageSize)
	assert.Equal(t, 3, cfg.PortfolioConcurrency)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, RateLimitStoreRedis, cfg.RateLimitStore)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"RECORD_STORE": "postgres", "PGSQL_URL": ""}},
		{"unknown store", map[string]string{"RECORD_STORE": "mongo"}},
		{"redis limiter without url", map[string]string{"RECORD_STORE": "memory", "RATE_LIMIT_STORE": "redis", "REDIS_URL": ""}},
		{"zero page size", map[string]string{"RECORD_STORE": "memory", "RECORD_PAGE_SIZE": "0"}},
		{"production default secret", map[string]string{"RECORD_STORE": "memory", "IS_PRODUCTION": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
