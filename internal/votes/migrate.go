package votes

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/preston-bernstein/election-gateway/internal/logging"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies pending schema migrations for the given SQL backend.
func Migrate(ctx context.Context, db *sql.DB, backend string, logger *slog.Logger) error {
	var dialect goose.Dialect
	switch backend {
	case BackendPostgres:
		dialect = goose.DialectPostgres
	case BackendSQLite:
		dialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("%w: %q has no migrations", ErrUnknownBackend, backend)
	}

	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("votes: migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("votes: migrate %s: %w", backend, err)
	}
	logging.Info(logger, "vote store migrated",
		slog.String(logging.FieldBackend, backend),
		slog.Int(logging.FieldCount, len(results)),
	)
	return nil
}
