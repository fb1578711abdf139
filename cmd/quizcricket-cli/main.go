package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bloops-games/quizcricket/internal/cache"
	"github.com/bloops-games/quizcricket/internal/cricket"
	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/resource"
	"github.com/bloops-games/quizcricket/internal/logging"
	"github.com/bloops-games/quizcricket/internal/rng"
	"github.com/bloops-games/quizcricket/internal/shutdown"
	"github.com/kelseyhightower/envconfig"
)

var version = "dev"

func main() {
	_, _ = fmt.Fprintf(os.Stdout, resource.GreetingCLI, resource.ProjectName, version)

	ctx, done := shutdown.New()
	defer done()

	config := cricket.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalf("processing the config: %v", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, config, done); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config cricket.Config, done func()) error {
	defer done()
	logger := logging.FromContext(ctx).Named("main.realMain")

	catalogCache, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	loader := catalog.NewLoader(resource.Catalog(), catalogCache)
	cat, err := loader.Load(ctx, config.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	logger.Debugf("catalog ready: %d teams, %d questions, seed %d", len(cat.Teams), len(cat.Questions), config.Seed)

	manager := cricket.NewManager(&config, loader, rng.New(config.Seed))
	if err := manager.Run(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
