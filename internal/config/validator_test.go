package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestValidateEnv_PostgresNeedsDBVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "key")
	t.Setenv("STORAGE", "postgres")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")

	t.Setenv("STORAGE", "memory")
	assert.NoError(t, ValidateEnv(), "Memory storage needs no DB settings")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2, "Should have 2 warnings")
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:           8080,
			APIKey:         "key",
			LogLevel:       "info",
			LogFormat:      "text",
			Environment:    "dev",
			ServiceName:    "swapmeet",
			Storage:        StorageMemory,
			DBMaxConns:     1,
			CacheSize:      10,
			CacheTTL:       DefaultCacheTTL,
			RateLimitBurst: 1,
			MaxBodyBytes:   1024,
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects zero cache size", func(t *testing.T) {
		cfg := valid()
		cfg.CacheSize = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CacheSize")
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimitRPS = -1

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RateLimitRPS")
	})
}
