package admin

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/router"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/internal/storage"
	"github.com/ruebensh/portfolio/internal/view"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	"github.com/ruebensh/portfolio/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// Messages flashed after admin actions.
const (
	MsgSaved        = "Saved."
	MsgDeleted      = "Deleted."
	MsgSaveFailed   = "Could not save your changes. Please try again."
	MsgLoadFailed   = "Could not load the current data. Please try again."
	MsgUploadFailed = "Could not upload the file."
	MsgLoggedOut    = "You have been logged out."
	MsgBadLogin     = "Invalid email or password."
	MsgLoginFailed  = "Sign in is unavailable right now. Please try again later."
)

// Handler holds dependencies for the admin pages.
type Handler struct {
	api      API
	sessions *session.Manager
	stager   *storage.Stager
	recorder *activity.Recorder
	feed     *activity.Feed
	renderer rendering.Renderer
	asset    components.AssetFunc
}

// NewHandler creates the admin handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		api:      deps.API,
		sessions: deps.Sessions,
		stager:   deps.Stager,
		recorder: deps.Recorder,
		feed:     deps.Feed,
		renderer: deps.Renderer,
		asset:    deps.Asset,
	}
}

func (h *Handler) render(c echo.Context, title string, content g.Node) error {
	page := layouts.Page{
		Title: title,
		Route: router.Match(c.Request().URL.Path),
		Flash: view.GetFlashData(c),
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Admin(page, content))
}

// done flashes a success message and sends the browser back to the editor.
func (h *Handler) done(c echo.Context, back, msg string) error {
	view.SetFlashSuccess(c, msg)
	return view.Redirect(c, back)
}

// fail reports a failed action. A rejected token ends the admin session and
// sends the browser to the login page; anything else is flashed on the
// editor page.
func (h *Handler) fail(c echo.Context, back string, err error, fallback string) error {
	ctx := c.Request().Context()
	if errors.Is(err, domain.ErrUnauthorized) {
		middleware.FromContext(ctx).Info("backend rejected admin token", "error", err)
		if cerr := h.sessions.ClearAdmin(c); cerr != nil {
			middleware.FromContext(ctx).Warn("failed to clear admin session", "error", cerr)
		}
		view.SetFlashError(c, middleware.MsgSessionExpired)
		return view.Redirect(c, middleware.LoginPath)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		middleware.FromContext(ctx).Error("admin action failed", "path", c.Path(), "error", err)
	}
	view.SetFlashError(c, handlers.UserMessage(err, fallback))
	return view.Redirect(c, back)
}

// unavailable renders a page whose data could not be loaded. A rejected token
// is handled like in fail.
func (h *Handler) unavailable(c echo.Context, title string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return h.fail(c, "", err, "")
	}
	middleware.FromContext(c.Request().Context()).Warn("admin page unavailable", "page", title, "error", err)
	return h.render(c, title, views.Unavailable(title))
}

func token(c echo.Context) string {
	return middleware.AdminToken(c)
}

// index reads an integer path parameter.
func index(c echo.Context, name string) (int, error) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return i, nil
}

// optionalFile returns the uploaded file for field, or nil when none was sent.
func optionalFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if fh.Size == 0 && fh.Filename == "" {
		return nil, nil
	}
	return fh, nil
}

// upload stages fh and forwards it to the API, returning the stored URL.
func (h *Handler) upload(c echo.Context, fh *multipart.FileHeader) (string, error) {
	ctx := c.Request().Context()
	var url string
	err := h.stager.Forward(ctx, fh, func(st *storage.Staged, body io.Reader) error {
		var err error
		url, err = h.api.UploadFile(ctx, token(c), backend.Upload{
			Filename:    st.Filename,
			ContentType: st.ContentType,
			Body:        body,
		})
		return err
	})
	if err != nil {
		return "", uploadError(err)
	}
	return url, nil
}

// uploadError maps staging rejections onto input errors so they are flashed
// with their reason.
func uploadError(err error) error {
	switch {
	case errors.Is(err, storage.ErrTooLarge), errors.Is(err, storage.ErrTypeNotAllowed), errors.Is(err, storage.ErrEmptyFile):
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	default:
		return err
	}
}
