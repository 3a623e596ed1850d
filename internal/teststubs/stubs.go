package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/domain"
	"github.com/preston-bernstein/election-gateway/internal/votes"
)

// StubStatusFetcher is a test double for probe.StatusFetcher.
type StubStatusFetcher struct {
	mu     sync.Mutex
	Status domain.ElectionStatus
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// ElectionStatus returns the configured status and error while tracking calls.
func (s *StubStatusFetcher) ElectionStatus(ctx context.Context, creds credentials.Provider) (domain.ElectionStatus, error) {
	_ = ctx
	_ = creds
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status, s.Err
}

// SetErr swaps the returned error; safe while a probe loop is running.
func (s *StubStatusFetcher) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// StubVoteStore is a votes.Store with per-town canned answers.
type StubVoteStore struct {
	Counts map[string]int64
	Errs   map[string]error
	Calls  atomic.Int32
	Closed atomic.Bool
}

// VoteCount returns Errs[id], then Counts[id], then votes.ErrNotFound.
func (s *StubVoteStore) VoteCount(ctx context.Context, townID string) (int64, error) {
	s.Calls.Add(1)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err, ok := s.Errs[townID]; ok {
		return 0, err
	}
	if v, ok := s.Counts[townID]; ok {
		return v, nil
	}
	return 0, votes.ErrNotFound
}

func (s *StubVoteStore) Name() string { return "stub" }

func (s *StubVoteStore) Close() error {
	s.Closed.Store(true)
	return nil
}
