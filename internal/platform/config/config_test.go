package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/ledger")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "money-ledger", cfg.JWTIssuer)
	assert.Equal(t, 5*time.Minute, cfg.StatementCacheTTL)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.False(t, cfg.StrictLineSides)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("STATEMENT_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com,")
	t.Setenv("STRICT_LINE_SIDES", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.StatementCacheTTL)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.StrictLineSides)
}

func TestLoadConfig_InvalidCacheTTLFallsBack(t *testing.T) {
	t.Setenv("STATEMENT_CACHE_TTL", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.StatementCacheTTL)
}
