package server

import (
	"context"

	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/middleware"
)

// RegisterRoutes sets up the public pages and boots the modules.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	site := handlers.NewSiteHandler(s.deps.Backend, s.deps.Backend.AssetURL, s.deps.Renderer, s.Cfg.SiteTitle)
	contact := handlers.NewContactHandler(s.deps.Backend, s.deps.Recorder, s.deps.Renderer)

	s.E.GET("/", site.HomeGet)
	s.E.GET("/projects", site.ProjectsGet)
	s.E.GET("/project/:slug", site.ProjectGet)
	s.E.GET("/certificates", site.CertificatesGet)
	s.E.GET("/resume", site.ResumeGet)
	s.E.GET("/about", site.AboutGet)
	s.E.GET("/go", site.GoGet)
	s.E.POST("/contact", contact.ContactPost, middleware.RateLimiter(middleware.DefaultRate))
	s.E.GET("/health", handlers.Health(s.Cfg.APIBaseURL))

	return s.bootModules(ctx)
}
