package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantum5ocial/server/internal/config"
	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/indexer"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/internal/logger"
	"github.com/quantum5ocial/server/internal/metrics"
	"github.com/quantum5ocial/server/social/jobs"
	"github.com/quantum5ocial/server/social/orgs"
	"github.com/quantum5ocial/server/social/products"
	"github.com/quantum5ocial/server/social/profiles"
	"github.com/quantum5ocial/server/social/questions"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: indexer <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  index   - index publishable source entities into the search corpus")
		fmt.Println("  count   - print the number of indexed documents")
		fmt.Println("\nOptions for index:")
		fmt.Println("  --types <list>  - comma-separated entity types (job,product,organization,profile,question)")
		fmt.Println("  --dry-run       - render and check documents without embedding or inserting")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	metrics.Register()

	// connect to database
	ctx := context.Background()
	db, err := docstore.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	defer db.Close()

	logger.Info("connected to database")

	store := docstore.NewClient(db)

	switch command {
	case "index":
		flags := config.ParseIndexerFlags()
		if err := runIndex(ctx, cfg, store, db, flags); err != nil {
			logger.Fatal("indexing run failed", "error", err)
		}

	case "count":
		count, err := store.Count(ctx)
		if err != nil {
			logger.Fatal("failed to count documents", "error", err)
		}

		fmt.Println(count)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func runIndex(ctx context.Context, cfg *config.Config, store *docstore.Client, db *pgxpool.Pool, flags config.Flags) error {
	types, err := indexer.ParseTypes(flags.Types)
	if err != nil {
		return err
	}

	sources := indexer.Sources{
		Jobs:      jobs.NewRepository(db),
		Products:  products.NewRepository(db),
		Orgs:      orgs.NewRepository(db),
		Profiles:  profiles.NewRepository(db),
		Questions: questions.NewRepository(db),
	}

	var pipeline *indexer.Pipeline

	if flags.DryRun {
		pipeline = indexer.NewDryRun(store, sources)
	} else {
		embedder, err := llm.NewEmbedder(cfg)
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}

		pipeline = indexer.New(store, embedder, sources)
	}

	summary, err := pipeline.Run(ctx, types)
	if err != nil {
		return err
	}

	logger.Info("indexing finished",
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"dry_run", flags.DryRun,
	)

	for _, itemErr := range summary.Errors {
		logger.Warn("item failed", "type", itemErr.Type, "link", itemErr.Link, "error", itemErr.Err)
	}

	return nil
}
