package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/upstream"
)

// Towns lists every town with votes taken from the local store.
func (h *Handler) Towns(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	towns, err := h.gateway.Towns(r.Context())
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointTowns, err, false, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.merger.Apply(r.Context(), towns), h.logger)
}

// SearchTowns rejects a blank q before any upstream call.
func (h *Handler) SearchTowns(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, r, http.StatusBadRequest, msgSearchRequired, h.logger)
		return
	}
	towns, err := h.gateway.SearchTowns(r.Context(), q)
	if errors.Is(err, upstream.ErrEmptyQuery) {
		writeError(w, r, http.StatusBadRequest, msgSearchRequired, h.logger)
		return
	}
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointSearchTowns, err, false, h.logger)
		return
	}
	logging.Debug(logging.FromContext(r.Context(), h.logger), "town search",
		slog.Int(logging.FieldCount, len(towns)),
	)
	writeJSON(w, http.StatusOK, h.merger.Apply(r.Context(), towns), h.logger)
}

// TopTowns relays the upstream ranking as-is; it is never re-sorted or merged.
func (h *Handler) TopTowns(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	top, err := h.gateway.TopTowns(r.Context())
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointTop3, err, false, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, top, h.logger)
}

func (h *Handler) AdminTowns(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	towns, err := h.gateway.AdminTowns(r.Context(), h.creds(r))
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointAdminTowns, err, true, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.merger.Apply(r.Context(), towns), h.logger)
}
