package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore reads counts from a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(ctx context.Context, path string, migrate bool, logger *slog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("votes: create sqlite dir: %w", err)
		}
	}
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("votes: open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("votes: ping sqlite: %w", err)
	}
	if migrate {
		if err := Migrate(ctx, db, BackendSQLite, logger); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) VoteCount(ctx context.Context, townID string) (int64, error) {
	var votes int64
	err := s.db.QueryRowContext(ctx, `SELECT votes FROM town_votes WHERE town_id = ?`, townID).Scan(&votes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("votes: sqlite lookup %q: %w", townID, err)
	}
	return votes, nil
}

func (s *SQLiteStore) Name() string { return BackendSQLite }

func (s *SQLiteStore) Close() error { return s.db.Close() }
