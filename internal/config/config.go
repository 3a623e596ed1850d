package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Upstream UpstreamConfig
	Session  SessionConfig
	Votes    VotesConfig
	Probe    ProbeConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Upstream: loadUpstream(),
		Session:  loadSession(),
		Votes:    loadVotes(),
		Probe:    loadProbe(),
		Metrics:  loadMetrics(),
	}
}
