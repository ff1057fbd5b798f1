// Package admin is the content management area under /admin. Every page
// except the login form sits behind middleware.RequireAdmin; every write goes
// to the API with the session's bearer token.
package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/module"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/internal/storage"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	"github.com/samber/do/v2"
	"golang.org/x/time/rate"
)

// AdminModule implements the module.Module interface for the CMS.
type AdminModule struct {
	module.BaseModule
	deps Dependencies
}

// Dependencies holds all the services that the AdminModule requires to operate.
type Dependencies struct {
	API      API
	Sessions *session.Manager
	Stager   *storage.Stager
	Recorder *activity.Recorder
	Feed     *activity.Feed
	Renderer rendering.Renderer
	Asset    components.AssetFunc
	// LoginRate limits login attempts per client IP. Zero uses
	// middleware.DefaultRate.
	LoginRate rate.Limit
}

// New creates a new instance of the AdminModule, injecting its dependencies.
func New(deps Dependencies) *AdminModule {
	if deps.LoginRate == 0 {
		deps.LoginRate = middleware.DefaultRate
	}
	return &AdminModule{deps: deps}
}

// Name returns the module name.
func (m *AdminModule) Name() string {
	return "admin"
}

// Boot registers the admin routes. The server mounts us under /admin.
func (m *AdminModule) Boot(ctx context.Context, g *echo.Group, _ do.Injector) error {
	slog.Info("Booting AdminModule: Setting up routes...")
	h := NewHandler(m.deps)

	g.GET("/login", h.LoginGet)
	g.POST("/login", h.LoginPost, middleware.RateLimiter(m.deps.LoginRate))
	g.POST("/logout", h.LogoutPost)

	p := g.Group("", middleware.RequireAdmin(m.deps.Sessions))
	p.GET("", h.DashboardGet)

	p.GET("/projects", h.ProjectsGet)
	p.POST("/projects", h.ProjectCreate)
	p.POST("/projects/:id", h.ProjectUpdate)
	remove(p, "/projects/:id", h.ProjectDelete)

	p.GET("/certificates", h.CertificatesGet)
	p.POST("/certificates", h.CertificateCreate)
	remove(p, "/certificates/:id", h.CertificateDelete)

	p.GET("/skills", h.SkillsGet)
	p.POST("/skills/categories", h.CategoryAdd)
	remove(p, "/skills/categories/:i", h.CategoryRemove)
	p.POST("/skills/items", h.SkillAdd)
	remove(p, "/skills/categories/:i/items/:j", h.SkillRemove)

	p.GET("/experience", h.ExperienceGet)
	p.POST("/experience", h.ExperienceAdd)
	remove(p, "/experience/:i", h.ExperienceRemove)
	p.POST("/experience/impacts", h.ImpactAdd)
	remove(p, "/experience/:i/impacts/:j", h.ImpactRemove)

	p.GET("/about", h.AboutGet)
	p.POST("/about/story", h.StorySave)
	p.POST("/about/education", h.EducationAdd)
	remove(p, "/about/education/:i", h.EducationRemove)
	p.POST("/about/certificates", h.AboutCertificateAdd)
	remove(p, "/about/certificates/:i", h.AboutCertificateRemove)
	p.POST("/about/items", h.AboutItemAdd)
	remove(p, "/about/items/:list/:i", h.AboutItemRemove)

	p.GET("/settings", h.SettingsGet)
	p.POST("/settings", h.SettingsSave)

	p.GET("/messages", h.MessagesGet)
	p.POST("/messages/:id/read", h.MessageRead)
	p.PATCH("/messages/:id/read", h.MessageRead)
	p.POST("/messages/:id/reply", h.MessageReply)
	remove(p, "/messages/:id", h.MessageDelete)

	// Unknown admin pages land on the dashboard.
	p.GET("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/admin")
	})
	return nil
}

// remove registers a delete handler for htmx DELETE requests and for the
// plain form fallback, which posts to path + "/delete".
func remove(g *echo.Group, path string, h echo.HandlerFunc) {
	g.DELETE(path, h)
	g.POST(path+"/delete", h)
}
