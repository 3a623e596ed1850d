package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/election-gateway/internal/config"
	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/votes"
)

// buildVoteStore opens the configured vote-count backend.
func buildVoteStore(ctx context.Context, cfg config.VotesConfig, logger *slog.Logger) (votes.Store, error) {
	var (
		store votes.Store
		err   error
	)
	switch cfg.Backend {
	case votes.BackendMemory, "":
		store, err = votes.NewSeededMemoryStore(cfg.SeedFile)
	case votes.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("votes: DATABASE_URL is required for the postgres backend")
		}
		store, err = votes.NewPostgresStore(ctx, cfg.DatabaseURL, cfg.Migrate, logger)
	case votes.BackendSQLite:
		store, err = votes.NewSQLiteStore(ctx, cfg.SQLitePath, cfg.Migrate, logger)
	default:
		return nil, fmt.Errorf("%w: %q", votes.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	logging.Info(logger, "vote store ready", slog.String(logging.FieldBackend, store.Name()))
	return store, nil
}
