package config

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort           = "8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultVersion        = "dev"
	DefaultServiceName    = "swapmeet"
	DefaultDBMaxConns     = 10
	DefaultDBMaxIdle      = 5 * time.Minute
	DefaultDBMaxLife      = time.Hour
	DefaultCacheSize      = 1000
	DefaultCacheTTL       = 5 * time.Minute
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100
	DefaultMaxBodyBytes   = 1 << 20
)
