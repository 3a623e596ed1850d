package config

import "strings"

// UpstreamConfig controls how we reach the external election API.
type UpstreamConfig struct {
	BaseURL string
	Timeout Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		BaseURL: strings.TrimSuffix(envOrDefault(envAPIBaseURL, defaultAPIBaseURL), "/"),
		Timeout: durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
	}
}

// ProbeConfig controls the background upstream readiness probe.
type ProbeConfig struct {
	Enabled  bool
	Interval Duration
}

func loadProbe() ProbeConfig {
	return ProbeConfig{
		Enabled:  boolEnvOrDefault(envProbeEnabled, true),
		Interval: durationEnvOrDefault(envProbeInterval, defaultProbeInterval),
	}
}
