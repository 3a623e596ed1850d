package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/election-gateway/internal/domain"
	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/metrics"
)

const defaultLookupConcurrency = 8

// Merger enriches town lists with local vote counts.
type Merger struct {
	store   Store
	limit   int
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func NewMerger(store Store, logger *slog.Logger, recorder *metrics.Recorder, concurrency int) *Merger {
	if concurrency <= 0 {
		concurrency = defaultLookupConcurrency
	}
	return &Merger{
		store:   store,
		limit:   concurrency,
		logger:  logger,
		metrics: recorder,
	}
}

// Apply returns a copy of towns with Votes taken from the store. Every input town
// appears exactly once, in order. A failed lookup sets that town to 0 and never
// affects the others; Apply waits for all lookups before returning.
func (m *Merger) Apply(ctx context.Context, towns []domain.Town) []domain.Town {
	out := make([]domain.Town, len(towns))
	copy(out, towns)
	if len(out) == 0 {
		return out
	}

	logger := logging.FromContext(ctx, m.logger)
	var g errgroup.Group
	g.SetLimit(m.limit)
	for i := range out {
		i := i
		g.Go(func() error {
			out[i].Votes = m.lookup(ctx, out[i].ID.String(), logger)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (m *Merger) lookup(ctx context.Context, townID string, logger *slog.Logger) (votes int64) {
	backend := m.backend()
	defer func() {
		if r := recover(); r != nil {
			m.fallback(logger, backend, townID, fmt.Errorf("votes: lookup panic: %v", r))
			votes = 0
		}
	}()

	if m.store == nil {
		m.fallback(logger, backend, townID, errors.New("votes: store not configured"))
		return 0
	}
	count, err := m.store.VoteCount(ctx, townID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.fallback(logger, backend, townID, err)
		}
		return 0
	}
	if count < 0 {
		return 0
	}
	return count
}

func (m *Merger) fallback(logger *slog.Logger, backend, townID string, err error) {
	m.metrics.RecordVoteFallback(backend)
	logging.Warn(logger, "vote lookup failed, defaulting to 0",
		slog.String(logging.FieldTownID, townID),
		slog.String(logging.FieldBackend, backend),
		slog.Any("error", err),
	)
}

func (m *Merger) backend() string {
	if m.store == nil {
		return "none"
	}
	return m.store.Name()
}
