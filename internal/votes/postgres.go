package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore reads counts from the town_votes table through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects, pings and optionally migrates.
func NewPostgresStore(ctx context.Context, url string, migrate bool, logger *slog.Logger) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("votes: parse postgres url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("votes: connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("votes: ping postgres: %w", err)
	}

	if migrate {
		db := stdlib.OpenDBFromPool(pool)
		err := Migrate(ctx, db, BackendPostgres, logger)
		db.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) VoteCount(ctx context.Context, townID string) (int64, error) {
	var votes int64
	err := s.pool.QueryRow(ctx, `SELECT votes FROM town_votes WHERE town_id = $1`, townID).Scan(&votes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("votes: postgres lookup %q: %w", townID, err)
	}
	return votes, nil
}

func (s *PostgresStore) Name() string { return BackendPostgres }

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
