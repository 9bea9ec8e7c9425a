package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Swappable for tests.
var (
	parsePGConfig = pgxpool.ParseConfig
	newPGPool     = pgxpool.NewWithConfig
	pingPGPool    = func(ctx context.Context, pool *pgxpool.Pool) error { return pool.Ping(ctx) }
	closePGPool   = func(pool *pgxpool.Pool) { pool.Close() }
)

// PoolOptions sizes the connection pool. Zero values fall back to
// DefaultPoolOptions.
type PoolOptions struct {
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// DefaultPoolOptions suits a single API instance; idea generation is cheap so
// most connections are short reads.
var DefaultPoolOptions = PoolOptions{
	MaxConns:          25,
	MinConns:          5,
	MaxConnLifetime:   time.Hour,
	MaxConnIdleTime:   30 * time.Minute,
	HealthCheckPeriod: time.Minute,
}

type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDBWithOptions connects and pings before returning, so a bad DSN
// or an unreachable server fails at startup.
func NewPostgresDBWithOptions(dsn string, opts PoolOptions) (*PostgresDB, error) {
	config, err := parsePGConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	opts.applyTo(config)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := newPGPool(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pingPGPool(ctx, pool); err != nil {
		closePGPool(pool)
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

func (o PoolOptions) applyTo(config *pgxpool.Config) {
	d := DefaultPoolOptions
	config.MaxConns = pick(o.MaxConns, d.MaxConns)
	config.MinConns = pick(o.MinConns, d.MinConns)
	config.MaxConnLifetime = pick(o.MaxConnLifetime, d.MaxConnLifetime)
	config.MaxConnIdleTime = pick(o.MaxConnIdleTime, d.MaxConnIdleTime)
	config.HealthCheckPeriod = pick(o.HealthCheckPeriod, d.HealthCheckPeriod)
	if config.MinConns > config.MaxConns {
		config.MinConns = config.MaxConns
	}
}

func pick[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		closePGPool(db.Pool)
	}
}

func (db *PostgresDB) Health(ctx context.Context) error {
	return pingPGPool(ctx, db.Pool)
}
