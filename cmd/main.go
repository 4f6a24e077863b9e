package main

import (
	"context"
	"os"

	"github.com/desertthunder/vidsum/internal/repositories"
	"github.com/desertthunder/vidsum/internal/services"
	"github.com/desertthunder/vidsum/internal/session"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	ctx := context.Background()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	// The session survives across invocations in SQLite. A missing or
	// unopenable database degrades to the signed-out state.
	var store session.Store
	if db, err := shared.NewDatabase(config.Database.Path); err != nil {
		logger.Debugf("session database unavailable: %v", err)
	} else {
		defer db.Close()
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			logger.Warnf("failed to run migrations: %v", err)
		} else {
			store = repositories.NewSessionRepository(db)
		}
	}

	provider := session.NewProvider(config.Identity, nil)
	oracle := session.NewOracle(provider, store, logger)
	apiService := services.NewAPIService(config.Backend.BaseURL, nil, oracle.TokenSource(ctx))

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Oracle:  oracle,
		Backend: apiService,
		API:     apiService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "vidsum",
		Usage:    "Search YouTube, generate AI summaries & manage subscriptions",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
