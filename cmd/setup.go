package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase runs pending migrations against the local database, or rolls
// back the most recent one with --rollback.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	db := r.db
	if db == nil {
		opened, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open database at %s: %w", r.config.Database.Path, err)
		}
		defer opened.Close()
		db = opened
	}

	if cmd.Bool("rollback") {
		r.logger.Info("rolling back most recent migration")
		if err := shared.RollbackMigration(db); err != nil {
			return err
		}
		return r.writePlain("✓ Rolled back most recent migration\n")
	}

	r.logger.Infof("running migrations against %v", r.config.Database.Path)
	if err := shared.RunMigrations(db); err != nil {
		return err
	}

	return r.writePlain("✓ Database ready at %s\n", r.config.Database.Path)
}

// SetupConfig writes a starter config.toml.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("✓ Created %s\n", path)
	return r.writePlain("Set [catalog] api_key (or TMDB_API_KEY) and [backend] base_url to get started.\n")
}
