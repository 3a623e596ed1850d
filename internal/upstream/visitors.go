package upstream

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/domain"
)

// NormalizeDays turns a raw days parameter into a supported window.
// Blank or non-integer input yields DefaultVisitorDays; integers are clamped.
func NormalizeDays(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultVisitorDays
	}
	n, err := strconv.Atoi(raw)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return DefaultVisitorDays
	}
	// On ErrRange Atoi reports the saturated value, which clamps correctly.
	return ClampDays(n)
}

// ClampDays bounds n to [MinVisitorDays, MaxVisitorDays].
func ClampDays(n int) int {
	if n < MinVisitorDays {
		return MinVisitorDays
	}
	if n > MaxVisitorDays {
		return MaxVisitorDays
	}
	return n
}

// VisitorStats fetches fresh visitor analytics; nothing is cached.
func (c *Client) VisitorStats(ctx context.Context, creds credentials.Provider, days int) (domain.AdminVisitorStats, error) {
	days = ClampDays(days)
	stats, err := getJSON[domain.AdminVisitorStats](ctx, c, call{
		endpoint: EndpointVisitorStats,
		path:     pathVisitorStats + "?days=" + strconv.Itoa(days),
		creds:    creds,
	})
	if err != nil {
		return stats, err
	}
	if stats.Days == 0 {
		stats.Days = days
	}
	if stats.ByDay == nil {
		stats.ByDay = []domain.DailyVisitors{}
	}
	if stats.ByCountry == nil {
		stats.ByCountry = []domain.CountryVisitors{}
	}
	return stats, nil
}
