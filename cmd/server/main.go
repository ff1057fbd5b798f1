package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ruebensh/portfolio/internal/config"
	"github.com/ruebensh/portfolio/internal/logging"
	"github.com/ruebensh/portfolio/internal/server"
)

func main() {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}
	if err := s.RegisterRoutes(context.Background()); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}
	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
