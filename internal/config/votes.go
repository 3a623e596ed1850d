package config

import "strings"

// VotesConfig selects and configures the local vote-count store.
type VotesConfig struct {
	Backend     string
	DatabaseURL string
	SQLitePath  string
	SeedFile    string
	Migrate     bool
	Concurrency int
}

func loadVotes() VotesConfig {
	return VotesConfig{
		Backend:     strings.ToLower(envOrDefault(envVotesBackend, defaultVotesBackend)),
		DatabaseURL: envOrDefault(envDatabaseURL, ""),
		SQLitePath:  envOrDefault(envVotesSQLitePath, defaultVotesSQLitePath),
		SeedFile:    envOrDefault(envVotesSeedFile, ""),
		Migrate:     boolEnvOrDefault(envVotesMigrate, true),
		Concurrency: intEnvOrDefault(envVotesConcurrency, defaultVotesConcurrency),
	}
}
