package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/view"
	"github.com/ruebensh/portfolio/web/src/templates/components"
)

// Contact form outcomes.
const (
	MsgContactSent   = "Thanks! Your message has been sent."
	MsgContactFailed = "Sorry, your message could not be sent. Please try again later."
)

// MessageSender forwards contact submissions to the API.
type MessageSender interface {
	SendMessage(ctx context.Context, in domain.ContactInput) error
}

// ContactHandler accepts the public contact form.
type ContactHandler struct {
	sender   MessageSender
	recorder *activity.Recorder
	renderer rendering.Renderer
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(sender MessageSender, recorder *activity.Recorder, renderer rendering.Renderer) *ContactHandler {
	return &ContactHandler{sender: sender, recorder: recorder, renderer: renderer}
}

// ContactPost validates the form and forwards it. htmx callers get an inline
// message; plain posts get a flash and a redirect back to the contact section.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	ctx := c.Request().Context()
	var in domain.ContactInput
	err := Bind(c, &in)
	if err == nil {
		if err = h.sender.SendMessage(ctx, in); err != nil {
			middleware.FromContext(ctx).Error("failed to send contact message", "error", err)
		} else {
			h.recorder.Record(ctx, activity.KindMessage, in.Name)
		}
	}

	status, msg := http.StatusOK, MsgContactSent
	if err != nil {
		status = http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		msg = UserMessage(err, MsgContactFailed)
	}

	if view.IsFragment(c) {
		return h.renderer.RenderPage(c, status, components.Alert(err == nil, msg))
	}
	if err != nil {
		view.SetFlashError(c, msg)
	} else {
		view.SetFlashSuccess(c, msg)
	}
	return view.Redirect(c, "/#contact")
}
