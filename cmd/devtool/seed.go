package main

import (
	"context"
	"fmt"

	"github.com/osse101/SwapMeet_Go/internal/database"
	"github.com/osse101/SwapMeet_Go/internal/database/postgres"
	"github.com/osse101/SwapMeet_Go/internal/seed"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Load vendors from a YAML seed file into the database"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: seed <file.yaml>")
	}
	path := args[0]

	f, err := seed.Load(path)
	if err != nil {
		return err
	}
	PrintInfo("Loaded %d vendors from %s", len(f.Vendors), path)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, dbURL(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	svc := swapmeet.NewService(postgres.NewVendorRepository(pool), swapmeet.DefaultCacheConfig())
	vendors, err := seed.Apply(ctx, svc, f)
	if err != nil {
		return err
	}

	for _, v := range vendors {
		PrintSuccess("%s (%s): %d items", v.Name, v.ID, v.Len())
	}
	return nil
}
