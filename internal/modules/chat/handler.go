package chat

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	"github.com/ruebensh/portfolio/web/src/templates/layouts"
	"github.com/ruebensh/portfolio/web/src/templates/pages"
)

// Assistant answers one visitor turn within a conversation.
type Assistant interface {
	Chat(ctx context.Context, message, sessionID string) (string, error)
}

// Handler holds dependencies for the chat module's HTTP handlers.
type Handler struct {
	assistant Assistant
	sessions  *session.Manager
	renderer  rendering.Renderer
	siteTitle string
}

// NewHandler creates a new chat handler with its dependencies.
func NewHandler(assistant Assistant, sessions *session.Manager, renderer rendering.Renderer, siteTitle string) *Handler {
	return &Handler{
		assistant: assistant,
		sessions:  sessions,
		renderer:  renderer,
		siteTitle: siteTitle,
	}
}

// ChatGet serves the full-page chat.
func (h *Handler) ChatGet(c echo.Context) error {
	page := handlers.Page(c, "AI Chat", h.siteTitle)
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Public(page, pages.Chat()))
}

// MessagePost sends one turn to the assistant and returns the visitor turn
// followed by the reply. Any failure past validation is answered with the
// apology turn so the conversation stays usable.
func (h *Handler) MessagePost(c echo.Context) error {
	var in domain.ChatInput
	if err := handlers.Bind(c, &in); err != nil {
		return c.NoContent(http.StatusUnprocessableEntity)
	}
	message := strings.TrimSpace(in.Message)
	return h.renderer.RenderPage(c, http.StatusOK, components.ChatExchange(message, h.reply(c, message)))
}

func (h *Handler) reply(c echo.Context, message string) string {
	ctx := c.Request().Context()
	log := middleware.FromContext(ctx)

	sessionID, err := h.sessions.ChatSessionID(c)
	if err != nil {
		log.Error("chat session unavailable", "error", err)
		return components.Apology
	}
	reply, err := h.assistant.Chat(ctx, message, sessionID)
	if err != nil {
		log.Warn("assistant request failed", "session_id", sessionID, "error", err)
		return components.Apology
	}
	if strings.TrimSpace(reply) == "" {
		log.Warn("assistant returned an empty reply", "session_id", sessionID)
		return components.Apology
	}
	return reply
}

// ResetPost starts a new conversation: the session id is dropped and the log
// is replaced with the greeting.
func (h *Handler) ResetPost(c echo.Context) error {
	if err := h.sessions.ResetChat(c); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("failed to reset chat session", "error", err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, components.ChatLogContent())
}
