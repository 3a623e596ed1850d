package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/upstream"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

// writeRaw relays an already-encoded JSON body; an empty body sends headers only.
func writeRaw(w http.ResponseWriter, status int, body json.RawMessage, logger *slog.Logger) {
	if len(body) == 0 || status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error(logger, "failed to write response", err)
	}
}

// writeError emits the {"error": message} envelope. The request ID travels in
// the X-Request-ID response header, never in the body.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Error: message}, logging.FromContext(r.Context(), logger))
}

// writeUpstreamError maps a gateway failure onto a client response. When relay
// is set an upstream 4xx keeps its status; everything else becomes 500. Raw
// errors are logged and never sent to the client.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, endpoint string, err error, relay bool, logger *slog.Logger) {
	logger = logging.FromContext(r.Context(), logger)

	uErr, ok := upstream.AsUpstreamError(err)
	if !ok {
		logging.Error(logger, "upstream call failed", err, slog.String(logging.FieldEndpoint, endpoint))
		writeError(w, r, http.StatusInternalServerError, msgUnexpected, logger)
		return
	}

	logging.Warn(logger, "upstream returned error",
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int(logging.FieldUpstreamStatus, uErr.Status),
		slog.Any("error", err),
	)
	status := http.StatusInternalServerError
	if relay && uErr.Status >= 400 && uErr.Status < 500 {
		status = uErr.Status
	}
	writeError(w, r, status, uErr.Message, logger)
}
