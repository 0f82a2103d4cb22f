package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Dependencies holds the process-wide external resources. It is built once
// at startup; every failure here is fatal for the run.
type Dependencies struct {
	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Logger   *slog.Logger
}

type Option func(context.Context, *Dependencies) error

func (d *Dependencies) Close() {
	if d == nil {
		return
	}

	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
}

func NewDependencies(ctx context.Context, opts ...Option) (*Dependencies, error) {
	deps := &Dependencies{}

	for _, opt := range opts {
		if err := opt(ctx, deps); err != nil {
			deps.Close()
			return nil, err
		}
	}

	return deps, nil
}

func WithPostgres(user, password, host, port, dbName string) Option {
	return func(ctx context.Context, d *Dependencies) error {
		connString := fmt.Sprintf(
			"postgresql://%s:%s@%s:%s/%s?sslmode=disable",
			user, password, host, port, dbName,
		)

		pool, err := pgxpool.New(ctx, connString)
		if err != nil {
			return fmt.Errorf("creating postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return fmt.Errorf("pinging postgres: %w", err)
		}

		d.Postgres = pool
		return nil
	}
}

func WithRedis(addr string, db int) Option {
	return func(ctx context.Context, d *Dependencies) error {
		client := redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}

		d.Redis = client
		return nil
	}
}

func WithLogger(level slog.Level) Option {
	return func(_ context.Context, d *Dependencies) error {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
		d.Logger = logger
		return nil
	}
}
