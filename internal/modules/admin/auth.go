package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/view"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
	"github.com/ruebensh/portfolio/web/src/templates/layouts"
)

// LoginGet renders the sign-in form. Signed-in users go straight to the
// dashboard.
func (h *Handler) LoginGet(c echo.Context) error {
	if _, ok := h.sessions.AdminToken(c); ok {
		return view.Redirect(c, safeNext(c.QueryParam("next")))
	}
	page := layouts.Page{Title: "Sign in", SiteTitle: "Admin", Flash: view.GetFlashData(c)}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Bare(page, views.Login(c.QueryParam("next"))))
}

// LoginPost exchanges the credentials for a token and stores it in the
// session.
func (h *Handler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	next := c.FormValue("next")
	back := middleware.LoginPath
	if next != "" {
		back += "?next=" + url.QueryEscape(next)
	}

	var in domain.LoginInput
	if err := handlers.Bind(c, &in); err != nil {
		view.SetFlashError(c, handlers.UserMessage(err, MsgBadLogin))
		return view.Redirect(c, back)
	}

	token, err := h.api.Login(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			middleware.FromContext(ctx).Info("admin login rejected", "email", in.Email)
			view.SetFlashError(c, MsgBadLogin)
		} else {
			middleware.FromContext(ctx).Error("admin login failed", "error", err)
			view.SetFlashError(c, MsgLoginFailed)
		}
		return view.Redirect(c, back)
	}

	if err := h.sessions.SetAdminToken(c, token); err != nil {
		middleware.FromContext(ctx).Error("failed to store admin token", "error", err)
		view.SetFlashError(c, MsgLoginFailed)
		return view.Redirect(c, back)
	}
	h.recorder.Record(ctx, activity.KindLogin, in.Email)
	return view.Redirect(c, safeNext(next))
}

// LogoutPost drops the admin token.
func (h *Handler) LogoutPost(c echo.Context) error {
	if err := h.sessions.ClearAdmin(c); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("failed to clear admin session", "error", err)
	}
	view.SetFlashSuccess(c, MsgLoggedOut)
	return view.Redirect(c, middleware.LoginPath)
}

// safeNext only allows redirects back into the admin area.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/admin") || strings.HasPrefix(next, middleware.LoginPath) {
		return "/admin"
	}
	if strings.ContainsAny(next, "\\") || strings.HasPrefix(next, "//") {
		return "/admin"
	}
	return next
}
