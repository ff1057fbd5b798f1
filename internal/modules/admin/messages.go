package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/portfolio"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const messagesPath = "/admin/messages"

// MessagesGet lists contact messages, narrowed by ?q=.
func (h *Handler) MessagesGet(c echo.Context) error {
	messages, err := h.api.Messages(c.Request().Context(), token(c))
	if err != nil {
		return h.unavailable(c, "Messages", err)
	}
	q := c.QueryParam("q")
	return h.render(c, "Messages", views.Messages(portfolio.SearchMessages(messages, q), q, portfolio.UnreadCount(messages)))
}

// MessageRead marks a message as read.
func (h *Handler) MessageRead(c echo.Context) error {
	id := domain.ID(c.Param("id"))
	if err := h.api.MarkMessageRead(c.Request().Context(), token(c), id); err != nil {
		return h.fail(c, messagesPath, err, "Could not update the message.")
	}
	return h.done(c, messagesPath, "Marked as read.")
}

// MessageReply emails a reply to the sender through the API.
func (h *Handler) MessageReply(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.ID(c.Param("id"))
	var in domain.ReplyInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, messagesPath, err, "Could not send the reply.")
	}
	if err := h.api.ReplyMessage(ctx, token(c), id, in); err != nil {
		return h.fail(c, messagesPath, err, "Could not send the reply.")
	}
	h.recorder.Record(ctx, activity.KindReplied, "message #"+id.String())
	return h.done(c, messagesPath, "Reply sent.")
}

// MessageDelete removes a message.
func (h *Handler) MessageDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.ID(c.Param("id"))
	if err := h.api.DeleteMessage(ctx, token(c), id); err != nil {
		return h.fail(c, messagesPath, err, "Could not delete the message.")
	}
	h.recorder.Record(ctx, activity.KindDeleted, "message #"+id.String())
	return h.done(c, messagesPath, MsgDeleted)
}
