package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/election-gateway/internal/config"
	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	dotenvErr := config.LoadDotEnv()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "failed to load .env", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "failed to start gateway", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}
