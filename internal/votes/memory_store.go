package votes

import (
	"context"
	"sync"
)

// MemoryStore keeps vote counts in a thread-safe map.
type MemoryStore struct {
	mu    sync.RWMutex
	votes map[string]int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		votes: make(map[string]int64),
	}
}

// VoteCount returns ErrNotFound for unknown towns.
func (s *MemoryStore) VoteCount(ctx context.Context, townID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.votes[townID]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

// Set records a count for one town. Used by seeding and tests.
func (s *MemoryStore) Set(townID string, votes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[townID] = votes
}

// Replace swaps the whole table for counts.
func (s *MemoryStore) Replace(counts map[string]int64) {
	next := make(map[string]int64, len(counts))
	for id, v := range counts {
		next[id] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = next
}

// Len reports how many towns have a recorded count.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.votes)
}

func (s *MemoryStore) Name() string { return BackendMemory }

func (s *MemoryStore) Close() error { return nil }
