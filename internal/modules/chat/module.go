// Package chat is the AI assistant: a floating widget on every public page
// and a full-page variant, both proxying visitor turns to the API.
package chat

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/module"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/samber/do/v2"
	"golang.org/x/time/rate"
)

// ChatModule implements the module.Module interface for the chat feature.
type ChatModule struct {
	module.BaseModule
	assistant Assistant
	sessions  *session.Manager
	renderer  rendering.Renderer
	siteTitle string
	rate      rate.Limit
}

// Dependencies holds all the services that the ChatModule requires to operate.
type Dependencies struct {
	Assistant Assistant
	Sessions  *session.Manager
	Renderer  rendering.Renderer
	SiteTitle string
	// Rate limits chat turns per client IP. Zero uses middleware.DefaultRate.
	Rate rate.Limit
}

// New creates a new instance of the ChatModule, injecting its dependencies.
func New(deps Dependencies) *ChatModule {
	if deps.Rate == 0 {
		deps.Rate = middleware.DefaultRate
	}
	return &ChatModule{
		assistant: deps.Assistant,
		sessions:  deps.Sessions,
		renderer:  deps.Renderer,
		siteTitle: deps.SiteTitle,
		rate:      deps.Rate,
	}
}

// Name returns the module name.
func (m *ChatModule) Name() string {
	return "chat"
}

// Boot sets up the routes. The server mounts us under /chat.
func (m *ChatModule) Boot(ctx context.Context, g *echo.Group, _ do.Injector) error {
	slog.Info("Booting ChatModule: Setting up routes...")
	handler := NewHandler(m.assistant, m.sessions, m.renderer, m.siteTitle)
	limiter := middleware.RateLimiter(m.rate)

	g.GET("", handler.ChatGet)
	g.POST("/messages", handler.MessagePost, limiter)
	g.POST("/reset", handler.ResetPost, limiter)
	return nil
}
