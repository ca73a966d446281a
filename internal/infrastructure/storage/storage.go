// Package storage opens the configured backends and hands back the
// repositories, the revocation store and their readiness probes.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
	mongostore "github.com/AshuKumar2005/CityAcces/internal/infrastructure/db/mongo"
	pgstore "github.com/AshuKumar2005/CityAcces/internal/infrastructure/db/postgres"
	redisstore "github.com/AshuKumar2005/CityAcces/internal/infrastructure/db/redis"
	"github.com/AshuKumar2005/CityAcces/internal/pkg/config"
)

// Backend bundles everything the services need from infrastructure.
type Backend struct {
	Repos       *ports.Repositories
	Revocations ports.RevocationStore
	// Checks are named readiness probes, one per live connection.
	Checks map[string]func(ctx context.Context) error

	closers []func(ctx context.Context) error
}

// Open connects Redis and the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	b, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		_ = b.Close(ctx)
		return nil, err
	}
	b.Revocations = redisstore.NewRevocationStore(rdb)
	b.Checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	b.closers = append(b.closers, func(context.Context) error { return rdb.Close() })
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	return b, nil
}

// OpenStore connects only the repository backend. Postgres migrations run
// first when auto-migrate is enabled; Mongo indexes are always ensured.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	b := &Backend{Checks: make(map[string]func(ctx context.Context) error)}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		if err := b.openMongo(ctx, cfg.Mongo, log); err != nil {
			return nil, err
		}
	case config.DriverPostgres:
		if err := b.openPostgres(ctx, cfg.Postgres, log); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
	return b, nil
}

func (b *Backend) openMongo(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) error {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.URI, Database: cfg.Database})
	if err != nil {
		return err
	}
	b.closers = append(b.closers, client.Disconnect)

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = b.Close(ctx)
		return fmt.Errorf("mongo indexes: %w", err)
	}

	b.Repos = mongostore.NewRepositories(db)
	b.Checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	log.Info().Str("database", cfg.Database).Msg("mongodb connected")
	return nil
}

func (b *Backend) openPostgres(ctx context.Context, cfg config.PostgresConfig, log zerolog.Logger) error {
	if cfg.AutoMigrate {
		if err := pgstore.MigrateUp(cfg.URL); err != nil {
			return err
		}
		log.Info().Msg("postgres migrations applied")
	}

	pool, err := pgstore.Connect(ctx, pgstore.Config{URL: cfg.URL})
	if err != nil {
		return err
	}
	b.closers = append(b.closers, func(context.Context) error {
		pool.Close()
		return nil
	})

	b.Repos = pgstore.NewRepositories(pool)
	b.Checks["postgres"] = pool.Ping
	log.Info().Msg("postgres connected")
	return nil
}

// Close releases every connection in reverse order of opening.
func (b *Backend) Close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
