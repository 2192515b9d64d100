package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/c7harry/bayform/internal/config"
	"github.com/c7harry/bayform/internal/observability"
	"github.com/c7harry/bayform/internal/store"
	"github.com/c7harry/bayform/internal/types"
)

// loadConfig merges the optional config file with built-in defaults.
// Environment variables fill fields the file leaves empty.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if rootVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger honoring the verbose flag.
func newLogger(cfg config.Config) *log.Logger {
	return observability.NewLogger(os.Stderr, cfg.Verbose)
}

// openRepository picks PostgreSQL when a database URL is configured and
// falls back to the file store otherwise. The caller owns Close.
func openRepository(ctx context.Context, cfg config.Config) (store.Repository, error) {
	if cfg.DatabaseURL != "" {
		repo, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repo, nil
	}
	return store.NewFileStore(cfg.StorePath, nil)
}

// lookupResume resolves a CLI argument to a stored document. A UUID looks
// up by id; anything else matches on the resume's name.
func lookupResume(ctx context.Context, repo store.Repository, arg string) (*types.ResumeDocument, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return repo.Get(ctx, id)
	}

	docs, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].Name == arg {
			return &docs[i], nil
		}
	}
	return nil, fmt.Errorf("no resume named %q: %w", arg, store.ErrNotFound)
}
