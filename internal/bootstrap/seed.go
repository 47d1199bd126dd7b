package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SwapMeet_Go/internal/seed"
)

// SeedVendors creates the vendors listed in path. An empty path is a no-op.
// Seeding runs on every start, so a persistent store gains a fresh copy each time.
func SeedVendors(ctx context.Context, creator seed.VendorCreator, path string) error {
	if path == "" {
		return nil
	}

	slog.Info(LogMsgSeeding, "file", path)
	f, err := seed.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
	}

	if _, err := seed.Apply(ctx, creator, f); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedApplySeed, err)
	}
	return nil
}
