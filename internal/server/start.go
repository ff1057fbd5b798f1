package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// shutdownTimeout bounds the graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until a signal arrives or the listener fails,
// then shuts everything down.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr, "api", s.Cfg.APIBaseURL)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan struct{})
	go func() {
		waitForShutdown()
		close(stop)
	}()

	var startErr error
	select {
	case startErr = <-errCh:
		slog.Error("server stopped", "error", startErr)
	case <-stop:
		slog.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(startErr, s.Shutdown(ctx))
}
