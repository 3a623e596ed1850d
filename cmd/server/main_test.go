package main

import (
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunFailsOnUnknownVoteBackend(t *testing.T) {
	t.Setenv("VOTES_BACKEND", "redis")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")
	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
