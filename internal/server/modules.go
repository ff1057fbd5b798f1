package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// bootModules runs the two module phases: every module registers its
// services first, then each one is booted on its own route group.
func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.injector); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}

// shutdownModules stops the modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) error {
	var errs []error
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown module %s: %w", m.Name(), err))
		}
	}
	return errors.Join(errs...)
}
