package main

import (
	"context"
	"fmt"

	"github.com/osse101/SwapMeet_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply embedded migrations (up) or print the schema version (status)"
}

func (c *MigrateCommand) Run(args []string) error {
	subcmd := "up"
	if len(args) > 0 {
		subcmd = args[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, dbURL(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch subcmd {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "status":
		version, err := database.MigrationVersion(ctx, pool)
		if err != nil {
			return err
		}
		PrintInfo("Schema version: %d", version)
	default:
		return fmt.Errorf("unknown subcommand %q: want up or status", subcmd)
	}
	return nil
}
