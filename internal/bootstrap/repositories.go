package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SwapMeet_Go/internal/config"
	"github.com/osse101/SwapMeet_Go/internal/database"
	"github.com/osse101/SwapMeet_Go/internal/database/memory"
	"github.com/osse101/SwapMeet_Go/internal/database/postgres"
	"github.com/osse101/SwapMeet_Go/internal/repository"
)

// Storage is the selected vendor repository plus the pool behind it, if any
type Storage struct {
	Vendors repository.Vendor
	Pool    *pgxpool.Pool // nil for in-memory storage
}

// Close releases the database pool, if one was opened
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeStorage builds the repository selected by cfg.Storage. For postgres
// it opens the pool and applies migrations before returning.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.UsePostgres() {
		slog.Info(LogMsgStorageSelected, "storage", config.StorageMemory)
		return &Storage{Vendors: memory.NewVendorRepository()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgStorageSelected, "storage", config.StoragePostgres, "db_host", cfg.DBHost, "db_name", cfg.DBName)
	return &Storage{Vendors: postgres.NewVendorRepository(pool), Pool: pool}, nil
}
