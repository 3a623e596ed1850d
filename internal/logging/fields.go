package logging

import "log/slog"

// Structured log keys shared across packages.
const (
	FieldService        = "service"
	FieldVersion        = "version"
	FieldRequestID      = "request_id"
	FieldPath           = "path"
	FieldMethod         = "method"
	FieldClientIP       = "client_ip"
	FieldStatusCode     = "status_code"
	FieldDurationMS     = "duration_ms"
	FieldEndpoint       = "endpoint"
	FieldUpstreamStatus = "upstream_status"
	FieldTownID         = "town_id"
	FieldCount          = "count"
	FieldBackend        = "backend"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
