package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/portfolio"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const skillsPath = "/admin/skills"

// SkillsGet renders the skills editor.
func (h *Handler) SkillsGet(c echo.Context) error {
	skills, err := h.api.Skills(c.Request().Context())
	if err != nil {
		return h.unavailable(c, "Skills", err)
	}
	return h.render(c, "Skills", views.Skills(skills))
}

// editSkills re-fetches the list, applies edit and saves the whole list.
func (h *Handler) editSkills(c echo.Context, subject string, edit func([]domain.SkillCategory) ([]domain.SkillCategory, error)) error {
	ctx := c.Request().Context()
	skills, err := h.api.Skills(ctx)
	if err != nil {
		return h.fail(c, skillsPath, err, MsgLoadFailed)
	}
	skills, err = edit(skills)
	if err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	if err := h.api.SaveSkills(ctx, token(c), skills); err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	h.recorder.Record(ctx, activity.KindSaved, subject)
	return h.done(c, skillsPath, MsgSaved)
}

// CategoryAdd appends a skill category.
func (h *Handler) CategoryAdd(c echo.Context) error {
	var in domain.CategoryInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	return h.editSkills(c, "skill category "+in.Category, func(s []domain.SkillCategory) ([]domain.SkillCategory, error) {
		return portfolio.AddCategory(s, in.Category)
	})
}

// CategoryRemove drops the category at :i with its skills.
func (h *Handler) CategoryRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	return h.editSkills(c, "skills", func(s []domain.SkillCategory) ([]domain.SkillCategory, error) {
		return portfolio.RemoveCategory(s, i)
	})
}

// SkillAdd adds a skill to a category.
func (h *Handler) SkillAdd(c echo.Context) error {
	var in domain.SkillInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	return h.editSkills(c, "skill "+in.Name, func(s []domain.SkillCategory) ([]domain.SkillCategory, error) {
		return portfolio.AddSkill(s, in.Index, domain.Skill{Name: in.Name, Level: in.Level})
	})
}

// SkillRemove drops skill :j from category :i.
func (h *Handler) SkillRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	j, err := index(c, "j")
	if err != nil {
		return h.fail(c, skillsPath, err, MsgSaveFailed)
	}
	return h.editSkills(c, "skills", func(s []domain.SkillCategory) ([]domain.SkillCategory, error) {
		return portfolio.RemoveSkill(s, i, j)
	})
}
