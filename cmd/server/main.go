// Package main is the entry point for the relocation decision engine.
// The service evaluates sell-and-relocate versus hold-and-rent
// strategies across a grid of financing and rental choices, and exposes
// the results (including the Pareto-optimal subset) over HTTP.
//
// Startup sequence:
// 1. Load configuration from environment variables (.env supported)
// 2. Initialize structured logging
// 3. Open the catalog and snapshots databases and apply schemas
// 4. Seed the catalog if empty
// 5. Wire the evaluator, grid generator and repositories
// 6. Register the background re-evaluation job (if scheduled)
// 7. Start the HTTP server and wait for a shutdown signal
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/relocate/internal/config"
	"github.com/aristath/relocate/internal/database"
	"github.com/aristath/relocate/internal/modules/catalog"
	"github.com/aristath/relocate/internal/modules/evaluation"
	"github.com/aristath/relocate/internal/modules/scenarios"
	"github.com/aristath/relocate/internal/modules/snapshots"
	"github.com/aristath/relocate/internal/scheduler"
	"github.com/aristath/relocate/internal/server"
	"github.com/aristath/relocate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting relocation decision engine")

	catalogDB, err := database.New(database.Config{
		Path:    cfg.CatalogDBPath(),
		Profile: database.ProfileStandard,
		Name:    "catalog",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open catalog database")
	}
	defer catalogDB.Close()

	snapshotsDB, err := database.New(database.Config{
		Path:    cfg.SnapshotsDBPath(),
		Profile: database.ProfileCache,
		Name:    "snapshots",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshots database")
	}
	defer snapshotsDB.Close()

	if err := catalogDB.ApplySchema(catalog.Schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply catalog schema")
	}
	if err := snapshotsDB.ApplySchema(snapshots.Schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply snapshots schema")
	}

	properties := catalog.NewPropertyRepository(catalogDB, log)
	borrowers := catalog.NewBorrowerRepository(catalogDB, log)
	snapshotRepo := snapshots.NewRepository(snapshotsDB, log)

	if err := catalog.Seed(properties, borrowers, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	evaluator := evaluation.New(cfg.Policy)
	generator := scenarios.New(evaluator, log)

	// Background re-evaluation keeps a snapshot history of how the
	// grid shifts as the catalog changes. Disabled unless a schedule
	// is configured.
	sched := scheduler.New(log)
	if cfg.ReevalSchedule != "" {
		job := scheduler.NewReevaluateJob(generator, properties, borrowers, snapshotRepo, cfg.Analysis, log)
		if err := sched.AddJob(cfg.ReevalSchedule, job); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.ReevalSchedule).Msg("Failed to register re-evaluation job")
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := server.New(server.Config{
		Log:        log,
		Cfg:        cfg,
		Generator:  generator,
		Properties: properties,
		Borrowers:  borrowers,
		Snapshots:  snapshotRepo,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}
