package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/portfolio"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const experiencePath = "/admin/experience"

// ExperienceGet renders the timeline editor.
func (h *Handler) ExperienceGet(c echo.Context) error {
	entries, err := h.api.Experience(c.Request().Context())
	if err != nil {
		return h.unavailable(c, "Experience", err)
	}
	return h.render(c, "Experience", views.Experience(entries))
}

func (h *Handler) editExperience(c echo.Context, subject string, edit func([]domain.ExperienceEntry) ([]domain.ExperienceEntry, error)) error {
	ctx := c.Request().Context()
	entries, err := h.api.Experience(ctx)
	if err != nil {
		return h.fail(c, experiencePath, err, MsgLoadFailed)
	}
	entries, err = edit(entries)
	if err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	if err := h.api.SaveExperience(ctx, token(c), entries); err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	h.recorder.Record(ctx, activity.KindSaved, subject)
	return h.done(c, experiencePath, MsgSaved)
}

// ExperienceAdd puts a new position at the top of the timeline.
func (h *Handler) ExperienceAdd(c echo.Context) error {
	var in domain.ExperienceInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	return h.editExperience(c, "position "+in.Role+" at "+in.Company, func(e []domain.ExperienceEntry) ([]domain.ExperienceEntry, error) {
		return portfolio.AddExperience(e, in.Entry()), nil
	})
}

// ExperienceRemove drops the position at :i.
func (h *Handler) ExperienceRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	return h.editExperience(c, "experience", func(e []domain.ExperienceEntry) ([]domain.ExperienceEntry, error) {
		return portfolio.RemoveExperience(e, i)
	})
}

// ImpactAdd appends an impact line to a position.
func (h *Handler) ImpactAdd(c echo.Context) error {
	var in domain.ImpactInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	return h.editExperience(c, "experience", func(e []domain.ExperienceEntry) ([]domain.ExperienceEntry, error) {
		return portfolio.AddImpact(e, in.Index, in.Text)
	})
}

// ImpactRemove drops impact :j of position :i.
func (h *Handler) ImpactRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	j, err := index(c, "j")
	if err != nil {
		return h.fail(c, experiencePath, err, MsgSaveFailed)
	}
	return h.editExperience(c, "experience", func(e []domain.ExperienceEntry) ([]domain.ExperienceEntry, error) {
		return portfolio.RemoveImpact(e, i, j)
	})
}
