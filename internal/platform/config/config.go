package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "8080"
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer         = "money-ledger"
	defaultStatementCacheTTL = 5 * time.Minute
	defaultRateLimit         = "100-M"
	defaultMigrationsPath    = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Tokens are issued by the identity provider; the service only verifies them.
	JWTSecret string
	JWTIssuer string

	// Statement cache. An empty RedisURL disables caching.
	RedisURL          string
	StatementCacheTTL time.Duration

	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	// StrictLineSides rejects journal lines that carry both a debit and a credit.
	StrictLineSides bool
	MigrationsPath  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("STATEMENT_CACHE_TTL", defaultStatementCacheTTL.String())
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8081")
	viper.SetDefault("STRICT_LINE_SIDES", false)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)

	// Environment variables override both the defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT environment variable not set.", slog.String("default", cfg.Port))
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		slog.Warn("JWT_ISSUER not set.", slog.String("default", cfg.JWTIssuer))
	}

	ttlStr := viper.GetString("STATEMENT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl < 0 {
		ttl = defaultStatementCacheTTL
		slog.Warn("Invalid value for STATEMENT_CACHE_TTL.", slog.String("value", ttlStr), slog.String("default", ttl.String()))
	}
	cfg.StatementCacheTTL = ttl

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.StrictLineSides = viper.GetBool("STRICT_LINE_SIDES")

	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("Running in production with the default JWT secret.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
