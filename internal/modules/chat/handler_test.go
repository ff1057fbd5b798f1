package chat_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/modules/chat"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssistant struct {
	mu       sync.Mutex
	reply    string
	err      error
	sessions []string
}

func (f *fakeAssistant) Chat(_ context.Context, message, sessionID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, sessionID)
	return f.reply, f.err
}

func setupChat(t *testing.T, assistant chat.Assistant) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(echosession.Middleware(session.NewStore("a-very-secret-key-for-testing-!", "", false)))

	m := chat.New(chat.Dependencies{
		Assistant: assistant,
		Sessions:  session.NewManager(),
		Renderer:  rendering.NewUniversalRenderer(),
		SiteTitle: "Test",
		Rate:      1000,
	})
	require.NoError(t, m.Boot(context.Background(), e.Group("/chat"), nil))
	return e
}

func post(e *echo.Echo, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMessagePost(t *testing.T) {
	t.Run("returns both turns", func(t *testing.T) {
		e := setupChat(t, &fakeAssistant{reply: "Hello from the assistant"})
		rec := post(e, "/chat/messages", url.Values{"message": {"  hi there  "}}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `data-role="user"`)
		assert.Contains(t, body, ">hi there<")
		assert.Contains(t, body, "Hello from the assistant")
		assert.Less(t, strings.Index(body, "hi there"), strings.Index(body, "Hello from the assistant"))
	})

	t.Run("backend failure renders the apology", func(t *testing.T) {
		e := setupChat(t, &fakeAssistant{err: errors.New("connection refused")})
		rec := post(e, "/chat/messages", url.Values{"message": {"hi"}}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), components.Apology)
	})

	t.Run("empty reply renders the apology", func(t *testing.T) {
		e := setupChat(t, &fakeAssistant{reply: "  "})
		rec := post(e, "/chat/messages", url.Values{"message": {"hi"}}, nil)
		assert.Contains(t, rec.Body.String(), components.Apology)
	})

	t.Run("blank message is rejected", func(t *testing.T) {
		assistant := &fakeAssistant{reply: "unused"}
		e := setupChat(t, assistant)
		rec := post(e, "/chat/messages", url.Values{"message": {"   "}}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Empty(t, assistant.sessions)
	})
}

func TestChatSessionLifecycle(t *testing.T) {
	assistant := &fakeAssistant{reply: "ok"}
	e := setupChat(t, assistant)

	first := post(e, "/chat/messages", url.Values{"message": {"one"}}, nil)
	require.Equal(t, http.StatusOK, first.Code)
	cookies := first.Result().Cookies()
	require.NotEmpty(t, cookies)

	second := post(e, "/chat/messages", url.Values{"message": {"two"}}, cookies)
	require.Equal(t, http.StatusOK, second.Code)

	reset := post(e, "/chat/reset", nil, cookies)
	require.Equal(t, http.StatusOK, reset.Code)
	assert.Contains(t, reset.Body.String(), components.Greeting)

	third := post(e, "/chat/messages", url.Values{"message": {"three"}}, reset.Result().Cookies())
	require.Equal(t, http.StatusOK, third.Code)

	require.Len(t, assistant.sessions, 3)
	assert.NotEmpty(t, assistant.sessions[0])
	assert.Equal(t, assistant.sessions[0], assistant.sessions[1], "id is stable within a session")
	assert.NotEqual(t, assistant.sessions[0], assistant.sessions[2], "reset starts a new conversation")
}

func TestChatGet(t *testing.T) {
	e := setupChat(t, &fakeAssistant{})
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, components.Greeting)
	assert.Contains(t, body, `hx-post="/chat/messages"`)
	assert.NotContains(t, body, `id="chat-widget"`, "the floating widget is hidden on the chat page")
}
