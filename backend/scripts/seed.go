package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"degrees/backend/internal/dataset"
	"degrees/backend/internal/graph"
	"degrees/backend/internal/loader"
	"degrees/backend/pkg/config"
	"degrees/backend/pkg/logger"

	"go.uber.org/zap"
)

type seedOptions struct {
	dataDir string
	reset   bool
	batch   int
}

// Imports a people/movies/stars CSV directory into Neo4j.
//
//	go run ./backend/scripts -data large -reset
func main() {
	dataDir := flag.String("data", "", "CSV dataset directory (defaults to DATA_DIR)")
	reset := flag.Bool("reset", false, "Delete existing Person and Movie nodes first")
	batch := flag.Int("batch", 0, "Rows per UNWIND batch (defaults to IMPORT_BATCH_SIZE)")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development", false); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	opts := seedOptions{dataDir: *dataDir, reset: *reset, batch: *batch}
	if err := seed(context.Background(), cfg, opts, log); err != nil {
		log.Error("Database seeding failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// seed reads the dataset and writes it to Neo4j. The driver is closed on every path.
func seed(ctx context.Context, cfg *config.Config, opts seedOptions, log *zap.Logger) error {
	if opts.dataDir == "" {
		opts.dataDir = cfg.DataDir
	}
	if opts.batch < 1 {
		opts.batch = cfg.ImportBatchSize
	}

	res, err := loader.LoadDirectory(ctx, opts.dataDir)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	driver, err := dataset.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to Neo4j: %w", err)
	}
	repo := graph.NewRepository(driver)
	defer repo.Close()

	log.Info("Creating constraints and indexes...")
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if opts.reset {
		log.Info("Clearing existing graph...")
		if err := repo.Reset(ctx); err != nil {
			return fmt.Errorf("clear graph: %w", err)
		}
	}

	if err := repo.Import(ctx, res.Graph, opts.batch); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	stats := res.Graph.Stats()
	log.Info("Database seeding completed",
		zap.String("dir", opts.dataDir),
		zap.Int("people", stats.People),
		zap.Int("movies", stats.Movies),
		zap.Int("memberships", stats.Memberships),
		zap.Int("dropped", res.Dropped),
	)
	return nil
}
