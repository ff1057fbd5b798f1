// Package server assembles the echo instance: middleware, error pages, static
// assets, the public routes and the feature modules.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ruebensh/portfolio/internal/app"
	"github.com/ruebensh/portfolio/internal/config"
	"github.com/ruebensh/portfolio/internal/handlers"
	appmiddleware "github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/module"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/router"
	"github.com/ruebensh/portfolio/internal/view"
	"github.com/ruebensh/portfolio/web"
	"github.com/ruebensh/portfolio/web/src/templates/layouts"
	"github.com/ruebensh/portfolio/web/src/templates/pages"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	injector do.Injector
	deps     app.Dependencies
	modules  []module.Module

	// cancel stops the background subscribers started in New.
	cancel context.CancelFunc
}

// New creates a new Server instance from cfg.
func New(cfg *config.Config) (*Server, error) {
	injector := do.New()
	app.Provide(injector, cfg)
	deps, err := app.Resolve(injector)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := deps.Feed.Attach(ctx, deps.Bus); err != nil {
		cancel()
		_ = deps.Bus.Close()
		return nil, fmt.Errorf("attach activity feed: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	setupMiddleware(e, deps.Store)
	setupErrorHandling(e, deps.Renderer, cfg.SiteTitle)
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		deps:     deps,
		modules:  app.NewModules(deps),
		cancel:   cancel,
	}, nil
}

func setupMiddleware(e *echo.Echo, store sessions.Store) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.RequestLogger())
	e.Use(middleware.Secure())
	e.Use(session.Middleware(store))
}

// setupErrorHandling installs the error handler. Unhandled errors are logged
// with a stack trace; every error is answered with the error page, or with a
// JSON body when the client asked for JSON.
func setupErrorHandling(e *echo.Echo, renderer rendering.Renderer, siteTitle string) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		ctx := c.Request().Context()

		code := http.StatusInternalServerError
		message := "Something went wrong on our side."
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if code == http.StatusNotFound {
				message = "This page does not exist."
			}
		} else {
			appmiddleware.FromContext(ctx).Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case wantsJSON(c):
			respErr = c.JSON(code, handlers.ErrorResponse{Code: code, Message: message})
		default:
			page := layouts.Page{
				Title:     http.StatusText(code),
				SiteTitle: siteTitle,
				Route:     router.Match(c.Request().URL.Path),
			}
			respErr = renderer.RenderPage(c, code, layouts.Public(page, view.Templ(ctx, pages.ErrorMessage(code, message))))
		}
		if respErr != nil {
			slog.ErrorContext(ctx, "failed to write error response", "error", respErr)
		}
	}
}

func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
