package admin

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/portfolio"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const projectsPath = "/admin/projects"

// ProjectsGet lists projects. With ?edit=<id> the form is filled with that
// project.
func (h *Handler) ProjectsGet(c echo.Context) error {
	projects, err := h.api.Projects(c.Request().Context())
	if err != nil {
		return h.unavailable(c, "Projects", err)
	}
	var editing *domain.Project
	if id := c.QueryParam("edit"); id != "" {
		p, err := portfolio.FindProject(projects, id)
		if errors.Is(err, domain.ErrNotFound) {
			return h.fail(c, projectsPath, err, "That project no longer exists.")
		}
		editing = &p
	}
	return h.render(c, "Projects", views.Projects(projects, editing, h.asset))
}

// bindProject reads the project form and uploads a new image when one was
// chosen.
func (h *Handler) bindProject(c echo.Context) (domain.Project, error) {
	var in domain.ProjectInput
	if err := handlers.Bind(c, &in); err != nil {
		return domain.Project{}, err
	}
	fh, err := optionalFile(c, "image")
	if err != nil {
		return domain.Project{}, err
	}
	if fh != nil {
		url, err := h.upload(c, fh)
		if err != nil {
			return domain.Project{}, err
		}
		in.ImageURL = url
	}
	return in.Project(), nil
}

// ProjectCreate stores a new project.
func (h *Handler) ProjectCreate(c echo.Context) error {
	p, err := h.bindProject(c)
	if err != nil {
		return h.fail(c, projectsPath, err, MsgSaveFailed)
	}
	if err := h.api.CreateProject(c.Request().Context(), token(c), p); err != nil {
		return h.fail(c, projectsPath, err, MsgSaveFailed)
	}
	h.recorder.Record(c.Request().Context(), activity.KindCreated, "project "+p.Title)
	return h.done(c, projectsPath, "Project created.")
}

// ProjectUpdate replaces an existing project.
func (h *Handler) ProjectUpdate(c echo.Context) error {
	id := domain.ID(c.Param("id"))
	back := projectsPath + "?edit=" + id.String()
	p, err := h.bindProject(c)
	if err != nil {
		return h.fail(c, back, err, MsgSaveFailed)
	}
	if err := h.api.UpdateProject(c.Request().Context(), token(c), id, p); err != nil {
		return h.fail(c, back, err, MsgSaveFailed)
	}
	h.recorder.Record(c.Request().Context(), activity.KindUpdated, "project "+p.Title)
	return h.done(c, projectsPath, "Project updated.")
}

// ProjectDelete removes a project.
func (h *Handler) ProjectDelete(c echo.Context) error {
	id := domain.ID(c.Param("id"))
	if err := h.api.DeleteProject(c.Request().Context(), token(c), id); err != nil {
		return h.fail(c, projectsPath, err, "Could not delete the project.")
	}
	h.recorder.Record(c.Request().Context(), activity.KindDeleted, "project #"+id.String())
	return h.done(c, projectsPath, MsgDeleted)
}
