package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/upstream"
)

const maxRequestBody = 1 << 20

// CreateTown checks that the body is a JSON object with a non-blank name, then
// forwards the object as sent and relays the upstream answer verbatim.
func (h *Handler) CreateTown(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	var fields map[string]json.RawMessage
	if err == nil {
		err = json.Unmarshal(raw, &fields)
	}
	if err != nil || fields == nil {
		logging.Warn(logging.FromContext(r.Context(), h.logger), "create town: bad body", slog.Any("error", err))
		writeError(w, r, http.StatusBadRequest, msgInvalidBody, h.logger)
		return
	}
	var name string
	if err := json.Unmarshal(fields["name"], &name); err != nil || strings.TrimSpace(name) == "" {
		writeError(w, r, http.StatusBadRequest, msgTownNameRequired, h.logger)
		return
	}

	resp, err := h.gateway.CreateTown(r.Context(), h.creds(r), json.RawMessage(raw))
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointCreateTown, err, true, h.logger)
		return
	}
	writeRaw(w, resp.Status, resp.Body, h.logger)
}

func (h *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adminID(w, r)
	if !ok {
		return
	}
	resp, err := h.gateway.DeleteAdmin(r.Context(), h.creds(r), id)
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointDeleteAdmin, err, true, h.logger)
		return
	}
	writeRaw(w, resp.Status, resp.Body, h.logger)
}

func (h *Handler) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adminID(w, r)
	if !ok {
		return
	}
	resp, err := h.gateway.ToggleAdmin(r.Context(), h.creds(r), id)
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointToggleAdmin, err, true, h.logger)
		return
	}
	writeRaw(w, resp.Status, resp.Body, h.logger)
}

// VisitorStats clamps ?days before forwarding; it never rejects the value.
func (h *Handler) VisitorStats(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	days := upstream.NormalizeDays(r.URL.Query().Get("days"))
	stats, err := h.gateway.VisitorStats(r.Context(), h.creds(r), days)
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointVisitorStats, err, true, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats, h.logger)
}

// adminID returns the decoded {id} segment. chi matches on RawPath when the
// URL carries one, so the param is only still escaped in that case.
func (h *Handler) adminID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	var err error
	if r.URL.RawPath != "" {
		id, err = url.PathUnescape(id)
	}
	id = strings.TrimSpace(id)
	if err != nil || id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusBadRequest, msgInvalidID, h.logger)
		return "", false
	}
	return id, true
}
