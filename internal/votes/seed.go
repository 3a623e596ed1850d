package votes

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSeedFile reads a JSON object of {"townId": votes}.
func LoadSeedFile(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var counts map[string]int64
	if err := json.NewDecoder(f).Decode(&counts); err != nil {
		return nil, fmt.Errorf("votes: decode seed %s: %w", path, err)
	}
	for id, v := range counts {
		if v < 0 {
			return nil, fmt.Errorf("votes: seed %s: negative count for %q", path, id)
		}
	}
	return counts, nil
}

// NewSeededMemoryStore builds a MemoryStore from a seed file; an empty path yields an empty store.
func NewSeededMemoryStore(path string) (*MemoryStore, error) {
	s := NewMemoryStore()
	if path == "" {
		return s, nil
	}
	counts, err := LoadSeedFile(path)
	if err != nil {
		return nil, err
	}
	s.Replace(counts)
	return s, nil
}
