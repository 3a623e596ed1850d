package handlers

import (
	"net/http"

	"github.com/preston-bernstein/election-gateway/internal/upstream"
)

// ElectionStatus relays the public status, forwarding the caller's bearer if any.
func (h *Handler) ElectionStatus(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	status, err := h.gateway.ElectionStatus(r.Context(), h.creds(r))
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointElectionStatus, err, false, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, status, h.logger)
}

func (h *Handler) AdminElectionStatus(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	status, err := h.gateway.AdminElectionStatus(r.Context(), h.creds(r))
	if err != nil {
		writeUpstreamError(w, r, upstream.EndpointAdminElectionStatus, err, true, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, status, h.logger)
}
