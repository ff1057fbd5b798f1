package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/portfolio"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const aboutPath = "/admin/about"

// AboutGet renders the about editor.
func (h *Handler) AboutGet(c echo.Context) error {
	about, err := h.api.About(c.Request().Context())
	if err != nil {
		return h.unavailable(c, "About", err)
	}
	return h.render(c, "About", views.About(about.Normalize()))
}

func (h *Handler) editAbout(c echo.Context, edit func(domain.AboutContent) (domain.AboutContent, error)) error {
	ctx := c.Request().Context()
	about, err := h.api.About(ctx)
	if err != nil {
		return h.fail(c, aboutPath, err, MsgLoadFailed)
	}
	about, err = edit(about)
	if err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	if err := h.api.SaveAbout(ctx, token(c), about); err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	h.recorder.Record(ctx, activity.KindSaved, "about page")
	return h.done(c, aboutPath, MsgSaved)
}

// StorySave replaces the story text.
func (h *Handler) StorySave(c echo.Context) error {
	var in domain.StoryInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.SetStory(a, in.Story), nil
	})
}

// EducationAdd appends a degree.
func (h *Handler) EducationAdd(c echo.Context) error {
	var in domain.EducationInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.AddEducation(a, domain.Education{Degree: in.Degree, Institution: in.Institution, Year: in.Year}), nil
	})
}

// EducationRemove drops the degree at :i.
func (h *Handler) EducationRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.RemoveEducation(a, i)
	})
}

// AboutCertificateAdd appends a certification line.
func (h *Handler) AboutCertificateAdd(c echo.Context) error {
	var in domain.AboutCertificateInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.AddAboutCertificate(a, domain.AboutCertificate{Name: in.Name, Issuer: in.Issuer, Year: in.Year}), nil
	})
}

// AboutCertificateRemove drops the certification at :i.
func (h *Handler) AboutCertificateRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.RemoveAboutCertificate(a, i)
	})
}

// AboutItemAdd appends a line to the values, learning or working list.
func (h *Handler) AboutItemAdd(c echo.Context) error {
	var in domain.AboutItemInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.AddAboutItem(a, in.List, in.Text)
	})
}

// AboutItemRemove drops item :i of list :list.
func (h *Handler) AboutItemRemove(c echo.Context) error {
	i, err := index(c, "i")
	if err != nil {
		return h.fail(c, aboutPath, err, MsgSaveFailed)
	}
	list := c.Param("list")
	return h.editAbout(c, func(a domain.AboutContent) (domain.AboutContent, error) {
		return portfolio.RemoveAboutItem(a, list, i)
	})
}
