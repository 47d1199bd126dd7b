package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"` // API key for authentication
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string // optional; when set, each session also logs to a file here
	Environment string `validate:"required"`
	Version     string
	ServiceName string `validate:"required"`

	// Storage selects the vendor repository backend
	Storage    string `validate:"oneof=memory postgres"`
	DBUser     string `validate:"required_if=Storage postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=Storage postgres"`
	DBPort     string `validate:"required_if=Storage postgres"`
	DBName     string `validate:"required_if=Storage postgres"`
	DBMaxConns int    `validate:"min=1"`
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration

	// SeedFile optionally points at a YAML file of vendors loaded at startup
	SeedFile string

	CacheSize int           `validate:"min=1"`
	CacheTTL  time.Duration `validate:"gt=0"`

	RateLimitRPS   float64 `validate:"gte=0"` // 0 disables rate limiting
	RateLimitBurst int     `validate:"min=1"`

	// TrustedProxies are the remote addresses whose X-Forwarded-For is believed
	TrustedProxies []string
	MaxBodyBytes   int64 `validate:"min=1"`

	// OTelEndpoint enables OTLP/HTTP trace export when set (a URL such as http://collector:4318)
	OTelEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),

		Storage:    strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "swapmeet"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:  getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLife:  getEnvAsDuration("DB_MAX_LIFE", DefaultDBMaxLife),

		SeedFile: getEnv("SEED_FILE", ""),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		MaxBodyBytes:   int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),

		OTelEndpoint: getEnv("OTEL_ENDPOINT", ""),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsFloat parses a float environment variable, falling back on parse errors
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration parses a duration environment variable (e.g. "30s"), falling back on parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// UsePostgres reports whether the postgres repository is selected
func (c *Config) UsePostgres() bool {
	return c.Storage == StoragePostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
