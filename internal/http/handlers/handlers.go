package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/domain"
	"github.com/preston-bernstein/election-gateway/internal/probe"
	"github.com/preston-bernstein/election-gateway/internal/upstream"
	"github.com/preston-bernstein/election-gateway/internal/votes"
)

// Gateway is the set of external API calls the route handlers delegate to.
type Gateway interface {
	ElectionStatus(ctx context.Context, creds credentials.Provider) (domain.ElectionStatus, error)
	AdminElectionStatus(ctx context.Context, creds credentials.Provider) (domain.ElectionStatus, error)
	TopTowns(ctx context.Context) ([]domain.Top3Town, error)
	Towns(ctx context.Context) ([]domain.Town, error)
	SearchTowns(ctx context.Context, query string) ([]domain.Town, error)
	AdminTowns(ctx context.Context, creds credentials.Provider) ([]domain.Town, error)
	CreateTown(ctx context.Context, creds credentials.Provider, body json.RawMessage) (upstream.Response, error)
	DeleteAdmin(ctx context.Context, creds credentials.Provider, id string) (upstream.Response, error)
	ToggleAdmin(ctx context.Context, creds credentials.Provider, id string) (upstream.Response, error)
	VisitorStats(ctx context.Context, creds credentials.Provider, days int) (domain.AdminVisitorStats, error)
}

// Handler serves the /api routes plus health and readiness.
type Handler struct {
	gateway     Gateway
	merger      *votes.Merger
	logger      *slog.Logger
	tokenCookie string
	statusFn    func() probe.Status
}

// NewHandler constructs a Handler. A nil merger reports 0 votes for every town;
// a nil statusFn makes /ready always succeed.
func NewHandler(gateway Gateway, merger *votes.Merger, logger *slog.Logger, tokenCookie string, statusFn func() probe.Status) *Handler {
	if merger == nil {
		merger = votes.NewMerger(nil, logger, nil, 0)
	}
	return &Handler{
		gateway:     gateway,
		merger:      merger,
		logger:      logger,
		tokenCookie: tokenCookie,
		statusFn:    statusFn,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, msgShuttingDown, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the upstream probe.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = msgNotReady
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, msgNotFound, h.logger)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed, h.logger)
}

func (h *Handler) creds(r *http.Request) credentials.Provider {
	return credentials.FromRequest(r, h.tokenCookie)
}
