package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/election-gateway/internal/config"
	httpserver "github.com/preston-bernstein/election-gateway/internal/http"
	"github.com/preston-bernstein/election-gateway/internal/http/handlers"
	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/metrics"
	"github.com/preston-bernstein/election-gateway/internal/probe"
	"github.com/preston-bernstein/election-gateway/internal/upstream"
	"github.com/preston-bernstein/election-gateway/internal/votes"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	votes         votes.Store
	httpServer    httpServer
	metricsServer httpServer
	probe         Probe
	metricsStop   func(context.Context) error
}

// New wires the gateway, vote store, probe and HTTP servers from cfg.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	fail := func(stage string, err error) (*Server, error) {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, fmt.Errorf("server: %s: %w", stage, err)
	}

	gateway, err := upstream.NewClient(upstream.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Timeout:  cfg.Upstream.Timeout,
		Recorder: recorder,
	})
	if err != nil {
		return fail("gateway", err)
	}

	store, err := buildVoteStore(ctx, cfg.Votes, logger)
	if err != nil {
		return fail("vote store", err)
	}

	var prb Probe
	if cfg.Probe.Enabled {
		prb = probe.New(gateway, logger, recorder, cfg.Probe.Interval)
	}

	merger := votes.NewMerger(store, logger, recorder, cfg.Votes.Concurrency)
	httpSrv := buildHTTPServer(cfg, gateway, merger, logger, recorder, prb)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		votes:         store,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		probe:         prb,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, store votes.Store, httpSrv httpServer, prb Probe) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		votes:      store,
		httpServer: httpSrv,
		probe:      prb,
	}
}

func buildHTTPServer(cfg config.Config, gateway handlers.Gateway, merger *votes.Merger, logger *slog.Logger, recorder *metrics.Recorder, prb Probe) httpServer {
	var statusFn func() probe.Status
	if prb != nil {
		statusFn = prb.Status
	}

	handler := handlers.NewHandler(gateway, merger, logger, cfg.Session.TokenCookieName, statusFn)
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		Session: cfg.Session,
		Logger:  logger,
		Metrics: recorder,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the probe and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.probe != nil {
		s.probe.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// gracefulShutdown stops, in order: metrics exporter, metrics server, probe,
// HTTP server, vote store. Each step runs even if an earlier one failed.
func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.probe != nil {
		if err := s.probe.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop probe", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.votes != nil {
		if err := s.votes.Close(); err != nil {
			logging.Error(s.logger, "failed to close vote store", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
