// Package main implements the entry point for the QuestParty API server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questparty/questparty-api/internal/config"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/platform/postgres"
	"github.com/questparty/questparty-api/internal/platform/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("questparty-api: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to backing services and serves until ctx
// is cancelled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l = l.With(slog.String("environment", cfg.Server.Environment))

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cache_enabled", cfg.Cache.Enabled())

	db, err := setupAppDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if cfg.Server.MigrateOnStart {
		if err := postgres.Migrate(ctx, db, l); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	cache := setupAppCache(ctx, cfg.Cache, l)

	app, err := newApplication(cfg, l, db, cache)
	if err != nil {
		if cache != nil {
			_ = cache.Close()
		}
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// setupAppCache connects to Redis when configured. The API runs without the
// cache if Redis is unreachable at startup.
func setupAppCache(ctx context.Context, cfg config.CacheConfig, l *slog.Logger) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	client, err := redis.New(pingCtx, cfg.RedisURL)
	if err != nil {
		l.Warn("Redis unavailable, continuing without victory cache", "error", err)
		return nil
	}
	l.Info("Redis cache connected")
	return client
}
