package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/questparty/questparty-api/internal/api"
	"github.com/questparty/questparty-api/internal/config"
	"github.com/questparty/questparty-api/internal/platform/postgres"
	"github.com/questparty/questparty-api/internal/platform/redis"
	"github.com/questparty/questparty-api/internal/service/auth"
	"github.com/questparty/questparty-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	db          *sql.DB
	cache       *redis.Client
	health      api.Pinger
	cacheHealth api.CachePinger

	userStore    store.UserStore
	partyStore   store.PartyStore
	victoryStore store.VictoryStore

	jwtService auth.JWTService
}

// newApplication creates a new application instance with all dependencies
// initialized. cache may be nil.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, cache *redis.Client) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		cache:  cache,
		health: db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.partyStore = postgres.NewPostgresPartyStore(db, logger)

	var victories store.VictoryStore = postgres.NewPostgresVictoryStore(db, logger)
	if cache != nil {
		app.cacheHealth = cache
		ttl := time.Duration(cfg.Cache.VictoryTTLSeconds) * time.Second
		victories = redis.NewCachedVictoryStore(victories, cache.Cmdable(), ttl, logger)
		logger.Info("Victory cache enabled", "ttl", ttl.String())
	}
	app.victoryStore = victories

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the database pool and the Redis client.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("Error closing Redis client", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
