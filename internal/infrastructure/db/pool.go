package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellness-backend/internal/config"
)

// withSSLMode adds sslmode=require unless the URL already names a mode.
// Supabase rejects plaintext connections.
func withSSLMode(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil {
		// pgx reports the malformed URL
		return dbURL
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}
	return strings.TrimSpace(u.String())
}

// NewPool connects to Postgres with the store's pool settings and pings
// before returning.
func NewPool(ctx context.Context, store config.StoreConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(withSSLMode(store.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	tuning := store.Pool
	poolCfg.MaxConns = tuning.MaxConns
	poolCfg.MinConns = tuning.MinConns
	poolCfg.MaxConnLifetime = tuning.Lifetime()
	poolCfg.MaxConnIdleTime = tuning.IdleTime()
	poolCfg.HealthCheckPeriod = tuning.HealthCheck()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
