package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/server"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	// Configuration comes from BILLSPLIT_* env vars and an optional
	// BILLSPLIT_CONFIG file.
	cfg, err := config.Load(nil)
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(cfg.Level())

	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
