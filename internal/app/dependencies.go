// Package app wires the services the server and its modules share.
package app

import (
	"context"
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/ruebensh/portfolio/internal/config"
	"github.com/ruebensh/portfolio/internal/pubsub"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/internal/storage"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/trace"
)

// Tracing is the tracer handed to the event bus and the func that flushes it.
type Tracing struct {
	Tracer   trace.Tracer
	Shutdown func(context.Context) error
}

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Config   *config.Config
	Backend  *backend.Client
	Store    sessions.Store
	Sessions *session.Manager
	Stager   *storage.Stager
	Bus      *pubsub.WatermillBridge
	Tracing  Tracing
	Feed     *activity.Feed
	Recorder *activity.Recorder
	Renderer rendering.Renderer
}

// Provide registers every core service on the injector. Services are built
// lazily on first invoke.
func Provide(i do.Injector, cfg *config.Config) {
	do.ProvideValue(i, cfg)

	do.Provide(i, func(i do.Injector) (*backend.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return backend.New(cfg.APIBaseURL, cfg.BackendTimeout), nil
	})
	do.Provide(i, func(i do.Injector) (sessions.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return session.NewStore(cfg.SessionSecret, cfg.SessionEncryptionKey, cfg.CookieSecure), nil
	})
	do.Provide(i, func(do.Injector) (*session.Manager, error) {
		return session.NewManager(), nil
	})
	do.Provide(i, func(i do.Injector) (*storage.Stager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		fs, err := storage.NewFs(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return storage.NewStager(storage.NewAferoStore(fs), cfg.UploadMaxBytes, cfg.UploadAllowedTypes), nil
	})
	do.Provide(i, func(i do.Injector) (Tracing, error) {
		cfg := do.MustInvoke[*config.Config](i)
		tracer, shutdown, err := pubsub.SetupOTel(context.Background(), pubsub.TracingConfig{
			Enabled:     cfg.TracingEnabled,
			ServiceName: cfg.TracingServiceName,
			ZipkinURL:   cfg.TracingZipkinURL,
		})
		if err != nil {
			return Tracing{}, fmt.Errorf("setup tracing: %w", err)
		}
		return Tracing{Tracer: tracer, Shutdown: shutdown}, nil
	})
	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		tracing, err := do.Invoke[Tracing](i)
		if err != nil {
			return nil, err
		}
		return pubsub.NewWatermillBridge(tracing.Tracer), nil
	})
	do.Provide(i, func(do.Injector) (*activity.Feed, error) {
		return activity.NewFeed(activity.DefaultCapacity), nil
	})
	do.Provide(i, func(i do.Injector) (*activity.Recorder, error) {
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		return activity.NewRecorder(bus), nil
	})
	do.Provide(i, func(do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
}

// Resolve builds every core service, failing on the first that cannot be
// created.
func Resolve(i do.Injector) (Dependencies, error) {
	var (
		d   Dependencies
		err error
	)
	steps := []func() error{
		func() error { d.Config, err = do.Invoke[*config.Config](i); return err },
		func() error { d.Backend, err = do.Invoke[*backend.Client](i); return err },
		func() error { d.Store, err = do.Invoke[sessions.Store](i); return err },
		func() error { d.Sessions, err = do.Invoke[*session.Manager](i); return err },
		func() error { d.Stager, err = do.Invoke[*storage.Stager](i); return err },
		func() error { d.Tracing, err = do.Invoke[Tracing](i); return err },
		func() error { d.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); return err },
		func() error { d.Feed, err = do.Invoke[*activity.Feed](i); return err },
		func() error { d.Recorder, err = do.Invoke[*activity.Recorder](i); return err },
		func() error { d.Renderer, err = do.Invoke[rendering.Renderer](i); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return Dependencies{}, fmt.Errorf("resolve dependencies: %w", err)
		}
	}
	return d, nil
}
