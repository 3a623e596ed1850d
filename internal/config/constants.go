package config

import "time"

const (
	envPort             = "PORT"
	envAPIBaseURL       = "API_BASE_URL"
	envAPITimeout       = "API_TIMEOUT"
	envSessionCookie    = "SESSION_COOKIE_NAME"
	envTokenCookie      = "TOKEN_COOKIE_NAME"
	envAdminPrefix      = "ADMIN_PREFIX"
	envAdminLoginPath   = "ADMIN_LOGIN_PATH"
	envAdminUIDir       = "ADMIN_UI_DIR"
	envVotesBackend     = "VOTES_BACKEND"
	envDatabaseURL      = "DATABASE_URL"
	envVotesSQLitePath  = "VOTES_SQLITE_PATH"
	envVotesSeedFile    = "VOTES_SEED_FILE"
	envVotesMigrate     = "VOTES_MIGRATE"
	envVotesConcurrency = "VOTES_LOOKUP_CONCURRENCY"
	envProbeEnabled     = "PROBE_ENABLED"
	envProbeInterval    = "PROBE_INTERVAL"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultAPIBaseURL  = "http://localhost:5000/api"
	defaultAPITimeout  = 10 * time.Second
	defaultMetricsPort = "9090"
	defaultServiceName = "election-gateway"

	defaultSessionCookie  = "admin_session"
	defaultTokenCookie    = "admin_token"
	defaultAdminPrefix    = "/admin"
	defaultAdminLoginPath = "/admin/login"

	defaultVotesBackend     = "memory"
	defaultVotesSQLitePath  = "data/votes.db"
	defaultVotesConcurrency = 8

	defaultProbeInterval = 30 * time.Second
)
