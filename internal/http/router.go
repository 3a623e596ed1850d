package http

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/election-gateway/internal/config"
	"github.com/preston-bernstein/election-gateway/internal/http/handlers"
	"github.com/preston-bernstein/election-gateway/internal/http/middleware"
	"github.com/preston-bernstein/election-gateway/internal/metrics"
)

// RouterConfig carries what the router needs beyond the handlers.
type RouterConfig struct {
	Session config.SessionConfig
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// NewRouter registers the API, operational endpoints and gated admin pages.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(h.Recoverer)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/election/status", h.ElectionStatus)
		r.Get("/towns", h.Towns)
		r.Get("/towns/search", h.SearchTowns)
		r.Get("/towns/top-3", h.TopTowns)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/election/status", h.AdminElectionStatus)
			r.Get("/towns", h.AdminTowns)
			r.Post("/towns", h.CreateTown)
			r.Delete("/admins/{id}", h.DeleteAdmin)
			r.Patch("/admins/{id}/toggle", h.ToggleAdmin)
			r.Get("/visitors/stats", h.VisitorStats)
		})
	})

	mountAdminPages(r, h, cfg)

	return middleware.LoggingMiddleware(cfg.Logger, cfg.Metrics, r)
}

// mountAdminPages serves ADMIN_UI_DIR (or a JSON 404) behind the session gate.
func mountAdminPages(r chi.Router, h *handlers.Handler, cfg RouterConfig) {
	s := cfg.Session
	if s.ProtectedPrefix == "" {
		return
	}

	var pages nethttp.Handler = nethttp.HandlerFunc(h.NotFound)
	if s.UIDir != "" {
		pages = nethttp.StripPrefix(strings.TrimSuffix(s.ProtectedPrefix, "/"), nethttp.FileServer(nethttp.Dir(s.UIDir)))
	}

	gated := r.With(middleware.SessionGate(s.ProtectedPrefix, s.LoginPath, s.CookieName, cfg.Logger))
	base := strings.TrimSuffix(s.ProtectedPrefix, "/")
	if base != "" {
		gated.Handle(base, pages)
	}
	gated.Handle(base+"/*", pages)

	if s.LoginPath != "" && !strings.HasPrefix(s.LoginPath, base+"/") {
		r.Handle(s.LoginPath, pages)
	}
}
