package main

import (
	"github.com/spf13/cobra"

	"github.com/c7harry/bayform/internal/rendercache"
	"github.com/c7harry/bayform/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the REST API exposing rendering, tailoring and resume storage over HTTP.",
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (defaults from config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	addr := serveAddr
	if addr == "" {
		addr = cfg.ServerAddr
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}

	var cache rendercache.Cache
	if cfg.RedisAddr != "" {
		cache, err = rendercache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory render cache", "err", err)
			cache = rendercache.NewMemoryCache()
		}
	} else {
		cache = rendercache.NewMemoryCache()
	}

	srv := server.New(server.Config{
		Addr:   addr,
		Repo:   repo,
		Cache:  cache,
		Logger: logger,
	})
	return srv.Start()
}
