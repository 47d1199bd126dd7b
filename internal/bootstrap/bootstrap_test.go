package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwapMeet_Go/internal/config"
	"github.com/osse101/SwapMeet_Go/internal/database/memory"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"notes.txt",
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
	}, names, "Two old logs remain, leaving room for the new session")
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{
		LogLevel:    "info",
		LogFormat:   "json",
		LogDir:      dir,
		Environment: "test",
		ServiceName: "swapmeet",
		Version:     "test",
		Storage:     config.StorageMemory,
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingSwapMeet)
}

func TestInitializeStorage_Memory(t *testing.T) {
	storage, err := InitializeStorage(context.Background(), &config.Config{Storage: config.StorageMemory})
	require.NoError(t, err)
	assert.Nil(t, storage.Pool)
	require.NoError(t, storage.Vendors.Ping(context.Background()))
	storage.Close()
}

func TestSeedVendors(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewVendorRepository()
	svc := swapmeet.NewService(repo, swapmeet.DefaultCacheConfig())

	t.Run("empty path is a no-op", func(t *testing.T) {
		require.NoError(t, SeedVendors(ctx, svc, ""))
		vendors, err := svc.ListVendors(ctx)
		require.NoError(t, err)
		assert.Empty(t, vendors)
	})

	t.Run("loads file", func(t *testing.T) {
		require.NoError(t, SeedVendors(ctx, svc, filepath.Join("..", "seed", "testdata", "vendors.yaml")))
		vendors, err := svc.ListVendors(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, vendors)
	})

	t.Run("missing file", func(t *testing.T) {
		err := SeedVendors(ctx, svc, filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadSeed)
	})
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	called := false
	GracefulShutdown(context.Background(), ShutdownComponents{
		TracerShutdown: func(context.Context) error {
			called = true
			return nil
		},
	})
	assert.True(t, called)
}
