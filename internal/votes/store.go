// Package votes is the local vote-count store. This service only reads from it.
package votes

import (
	"context"
	"errors"
)

// Backend names.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

var (
	// ErrNotFound means the store has no row for the town; callers treat it as 0 votes.
	ErrNotFound = errors.New("votes: town not found")
	// ErrUnknownBackend is returned for an unsupported VOTES_BACKEND value.
	ErrUnknownBackend = errors.New("votes: unknown backend")
)

// Store looks up the locally recorded vote count for a town.
// Implementations must be safe for concurrent readers.
type Store interface {
	VoteCount(ctx context.Context, townID string) (int64, error)
	Name() string
	Close() error
}
