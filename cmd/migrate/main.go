package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/aunooai/aunoo/internal/config"
	"github.com/aunooai/aunoo/internal/database"
	"github.com/aunooai/aunoo/internal/database/migrations"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		dryRun     = flag.Bool("dry-run", false, "List pending migrations without applying them")
		status     = flag.Bool("status", false, "List applied migrations and exit")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Health(healthCtx); err != nil {
		logger.Fatal().Err(err).Msg("Database health check failed")
	}

	runner := database.NewMigrationRunner(db.DB(), logger)
	for _, migration := range migrations.GetMigrations() {
		runner.Register(migration)
	}

	switch {
	case *status:
		applied, err := runner.GetAppliedMigrations()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to read migration ledger")
		}
		for _, record := range applied {
			logger.Info().
				Str("name", record.Name).
				Time("applied_at", record.AppliedAt).
				Msg("Applied")
		}
		logger.Info().Int("count", len(applied)).Msg("Applied migrations")

	case *dryRun:
		pending, err := runner.GetPendingMigrations()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to determine pending migrations")
		}
		for _, migration := range pending {
			logger.Info().Str("name", migration.Name).Msg("Pending")
		}
		logger.Info().Int("count", len(pending)).Msg("Pending migrations")

	default:
		if err := runner.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Migration failed")
		}
		logger.Info().Msg("Schema is up to date")
	}
}
