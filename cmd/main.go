package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/tasks"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	shared.LoadDotenv()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("ignoring unreadable config.toml: %v", err)
		}
	}

	backend := services.NewBackendService(config.Backend.BaseURL, nil)
	catalog := services.NewTMDBService(config.Catalog, nil)

	var sessions tasks.SessionStore
	var activity *repositories.ActivityRepository

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Warnf("local database unavailable: %v", err)
	} else {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			logger.Warnf("migrations failed: %v", err)
		}
		sessions = repositories.NewSessionRepository(db)
		activity = repositories.NewActivityRepository(db)
		defer db.Close()
	}

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Auth:     backend,
		Catalog:  catalog,
		Remote:   backend,
		Sessions: sessions,
		Activity: activity,
		DB:       db,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "mvx",
		Usage:    "Browse popular titles and manage a watchlist from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrSessionExpired) {
			logger.Fatalf("session expired, sign in again: %v", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}
