package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/domain"
)

// TopTowns returns the standings exactly as ranked by the external API.
func (c *Client) TopTowns(ctx context.Context) ([]domain.Top3Town, error) {
	return coalesceSlice(ctx, c, EndpointTop3, EndpointTop3, func(ctx context.Context) ([]domain.Top3Town, error) {
		return getCollection[domain.Top3Town](ctx, c, call{endpoint: EndpointTop3, path: pathTop3})
	})
}

// Towns returns the public towns list without local vote counts.
func (c *Client) Towns(ctx context.Context) ([]domain.Town, error) {
	return coalesceSlice(ctx, c, EndpointTowns, EndpointTowns, func(ctx context.Context) ([]domain.Town, error) {
		return getTowns(ctx, c, call{endpoint: EndpointTowns, path: pathTowns})
	})
}

// SearchTowns rejects blank queries with ErrEmptyQuery before touching the network.
func (c *Client) SearchTowns(ctx context.Context, query string) ([]domain.Town, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	key := EndpointSearchTowns + "|" + q
	return coalesceSlice(ctx, c, key, EndpointSearchTowns, func(ctx context.Context) ([]domain.Town, error) {
		return getTowns(ctx, c, call{
			endpoint: EndpointSearchTowns,
			path:     pathSearchTowns + "?q=" + url.QueryEscape(q),
		})
	})
}

// AdminTowns lists every town for the admin panel.
func (c *Client) AdminTowns(ctx context.Context, creds credentials.Provider) ([]domain.Town, error) {
	return getTowns(ctx, c, call{
		endpoint: EndpointAdminTowns,
		path:     pathAdminTowns,
		creds:    creds,
	})
}

// wireTown is a town as the external API sends it. Its votes are ignored
// (counts come from the local store) and a malformed percentage is dropped,
// so one odd item never fails the whole list.
type wireTown struct {
	ID         domain.TownID   `json:"id"`
	Name       string          `json:"name"`
	Percentage json.RawMessage `json:"percentage"`
}

func getTowns(ctx context.Context, c *Client, cl call) ([]domain.Town, error) {
	items, err := getCollection[wireTown](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	towns := make([]domain.Town, 0, len(items))
	for _, it := range items {
		towns = append(towns, domain.Town{
			ID:         it.ID,
			Name:       it.Name,
			Percentage: parsePercentage(it.Percentage),
		})
	}
	return towns, nil
}

// parsePercentage accepts a JSON number or a numeric string.
func parsePercentage(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
