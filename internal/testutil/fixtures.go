package testutil

import (
	"github.com/preston-bernstein/election-gateway/internal/domain"
)

// SampleTowns returns towns with the given ids, named after them, with zero votes.
func SampleTowns(ids ...string) []domain.Town {
	towns := make([]domain.Town, 0, len(ids))
	for _, id := range ids {
		towns = append(towns, domain.Town{ID: domain.TownID(id), Name: "Town " + id})
	}
	return towns
}
