package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/tagkeep/tagkeep/internal/config"
	"github.com/tagkeep/tagkeep/internal/store/dbutil"
	"github.com/tagkeep/tagkeep/internal/vault"
)

// ErrNoDatabaseURL means no layer of the configuration produced a connection URI.
var ErrNoDatabaseURL = errors.New("no database URL configured: set DATABASE_URL, add it to .env.local/.env or config.yaml, or store it in the vault")

// ResolveURL resolves the connection URI: environment (including env files loaded
// by config.LoadEnvFiles), then config.yaml, then the vault secret.
func ResolveURL(ctx context.Context, cfg config.Config) (string, error) {
	if u := config.DatabaseURL(cfg); u != "" {
		return u, nil
	}
	if b, err := vault.GetSecret(ctx, vault.SecretDatabaseURL); err == nil && len(b) > 0 {
		log.Debug().Msg("database URL resolved from vault")
		return string(b), nil
	}
	return "", ErrNoDatabaseURL
}

// Connect resolves the URI and opens a validated pool. The URI never reaches the
// log; only its length is reported.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	url, err := ResolveURL(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return ConnectURL(ctx, url, cfg)
}

// ConnectURL opens a pool for an explicit URI and validates connectivity with a
// bounded ping.
func ConnectURL(ctx context.Context, url string, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, dbutil.ErrWrap("db.connect", err, dbutil.ParamSummary("url", url))
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, dbutil.ErrWrap("db.ping", err, dbutil.ParamSummary("url", url), dbutil.ParamSummary("timeout", cfg.ConnectTimeout()))
	}
	log.Debug().Str("summary", dbutil.ParamSummary("url", url)).Msg("connected to Postgres")
	return pool, nil
}
