// Package handlers serves the public pages and the small endpoints around
// them. Every page fetches fresh data from the API; a failed fetch is logged
// and the page renders its empty state instead of an error.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/router"
	"github.com/ruebensh/portfolio/internal/view"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	"github.com/ruebensh/portfolio/web/src/templates/layouts"
	"github.com/ruebensh/portfolio/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// SiteHandler renders the public pages.
type SiteHandler struct {
	content   portfolio.Content
	asset     components.AssetFunc
	renderer  rendering.Renderer
	siteTitle string
}

// NewSiteHandler creates a SiteHandler. asset resolves stored file paths.
func NewSiteHandler(content portfolio.Content, asset components.AssetFunc, renderer rendering.Renderer, siteTitle string) *SiteHandler {
	return &SiteHandler{
		content:   content,
		asset:     asset,
		renderer:  renderer,
		siteTitle: siteTitle,
	}
}

// Page builds the layout data for the current request.
func Page(c echo.Context, title, siteTitle string) layouts.Page {
	return layouts.Page{
		Title:     title,
		SiteTitle: siteTitle,
		Route:     router.Match(c.Request().URL.Path),
		Flash:     view.GetFlashData(c),
	}
}

func (h *SiteHandler) render(c echo.Context, p layouts.Page, content g.Node) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Public(p, content))
}

// HomeGet renders the landing page.
func (h *SiteHandler) HomeGet(c echo.Context) error {
	data := portfolio.LoadHome(c.Request().Context(), h.content)
	p := Page(c, "", h.siteTitle)
	p.Settings = data.Settings
	return h.render(c, p, pages.Home(data, h.asset))
}

// ProjectsGet renders the project list filtered by the category and q query
// parameters. htmx filter requests receive only the results fragment.
func (h *SiteHandler) ProjectsGet(c echo.Context) error {
	ctx := c.Request().Context()
	projects, err := h.content.Projects(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("projects unavailable", "error", err)
		projects = nil
	}
	v := pages.ProjectsView{
		Projects:   portfolio.FilterProjects(projects, c.QueryParam("category"), c.QueryParam("q")),
		Categories: portfolio.Categories(projects),
		Category:   c.QueryParam("category"),
		Query:      c.QueryParam("q"),
		Asset:      h.asset,
	}
	if view.IsFragment(c) {
		return h.renderer.RenderPage(c, http.StatusOK, pages.ProjectResults(v))
	}
	return h.render(c, Page(c, "Projects", h.siteTitle), pages.Projects(v))
}

// ProjectGet renders one project, looked up by its id among all projects.
func (h *SiteHandler) ProjectGet(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	var (
		project domain.Project
		found   bool
	)
	projects, err := h.content.Projects(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("projects unavailable", "slug", slug, "error", err)
	} else if project, err = portfolio.FindProject(projects, slug); err == nil {
		found = true
	}
	title := "Project not found"
	if found {
		title = project.Title
	}
	return h.render(c, Page(c, title, h.siteTitle), pages.ProjectDetail(project, found, h.asset))
}

// CertificatesGet renders the certificate gallery.
func (h *SiteHandler) CertificatesGet(c echo.Context) error {
	ctx := c.Request().Context()
	certs, err := h.content.Certificates(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("certificates unavailable", "error", err)
	}
	return h.render(c, Page(c, "Certificates", h.siteTitle), pages.Certificates(certs, h.asset))
}

// ResumeGet embeds the CV from the settings.
func (h *SiteHandler) ResumeGet(c echo.Context) error {
	ctx := c.Request().Context()
	s, err := h.content.Settings(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("settings unavailable", "error", err)
	}
	p := Page(c, "Resume", h.siteTitle)
	p.Settings = s
	return h.render(c, p, pages.Resume(s, h.asset))
}

// AboutGet renders the about page. The about record and the settings are
// loaded together; if either fails the fallback is shown.
func (h *SiteHandler) AboutGet(c echo.Context) error {
	ctx := c.Request().Context()
	data, err := portfolio.LoadAbout(ctx, h.content)
	if err != nil {
		middleware.FromContext(ctx).Warn("about page unavailable", "error", err)
	}
	p := Page(c, "About", h.siteTitle)
	p.Settings = data.Settings
	return h.render(c, p, pages.About(data, err == nil, h.asset))
}

// GoGet resolves a legacy hash fragment, passed as ?to=#/project/42, to the
// matching page.
func (h *SiteHandler) GoGet(c echo.Context) error {
	route := router.Resolve(c.QueryParam("to"))
	return c.Redirect(http.StatusFound, route.Path)
}

// Health reports that the server is up and which API it talks to.
func Health(backendURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Backend: backendURL})
	}
}
