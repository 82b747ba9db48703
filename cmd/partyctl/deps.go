package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/questparty/questparty-api/internal/config"
	"github.com/questparty/questparty-api/internal/platform/postgres"
	"github.com/questparty/questparty-api/internal/platform/redis"
	"github.com/questparty/questparty-api/internal/service/auth"
	"github.com/questparty/questparty-api/internal/store"
)

// deps is everything a subcommand may touch.
type deps struct {
	users     store.UserStore
	parties   store.PartyStore
	victories store.VictoryStore
	tokens    auth.JWTService
	schema    migrator
	close     func() error
}

// migrator applies and reverts schema migrations.
type migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Version(ctx context.Context) (int64, error)
}

// gooseMigrator runs the embedded goose migrations against db.
type gooseMigrator struct {
	db     *sql.DB
	logger *slog.Logger
}

func (m gooseMigrator) Up(ctx context.Context) error {
	return postgres.Migrate(ctx, m.db, m.logger)
}

func (m gooseMigrator) Down(ctx context.Context) error {
	return postgres.Rollback(ctx, m.db, m.logger)
}

func (m gooseMigrator) Version(ctx context.Context) (int64, error) {
	return postgres.MigrationVersion(ctx, m.db, m.logger)
}

// depsOpener builds deps for one command invocation.
type depsOpener func(ctx context.Context, configDir string, logger *slog.Logger) (*deps, error)

// openDeps loads configuration and connects to Postgres and, if configured,
// Redis so cached victories are evicted along with their rows.
func openDeps(ctx context.Context, configDir string, logger *slog.Logger) (*deps, error) {
	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxOpenConns(2)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	tokens, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	d := &deps{
		users:     postgres.NewPostgresUserStore(db, logger),
		parties:   postgres.NewPostgresPartyStore(db, logger),
		victories: postgres.NewPostgresVictoryStore(db, logger),
		tokens:    tokens,
		schema:    gooseMigrator{db: db, logger: logger},
		close:     db.Close,
	}

	if cfg.Cache.Enabled() {
		client, err := redis.New(pingCtx, cfg.Cache.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, cached victories will expire by TTL", "error", err)
			return d, nil
		}
		ttl := time.Duration(cfg.Cache.VictoryTTLSeconds) * time.Second
		d.victories = redis.NewCachedVictoryStore(d.victories, client.Cmdable(), ttl, logger)
		d.close = func() error {
			return errors.Join(client.Close(), db.Close())
		}
	}

	return d, nil
}
