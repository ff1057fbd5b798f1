package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := session.NewStore(testSessionSecret, "", false)
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = echosession.Middleware(store)(handler)(e.NewContext(req, rec))
	return c
}

func TestManager_AdminToken(t *testing.T) {
	m := session.NewManager()

	t.Run("absent by default", func(t *testing.T) {
		c := setupTestContext()
		_, ok := m.AdminToken(c)
		assert.False(t, ok)
	})

	t.Run("set, read and clear", func(t *testing.T) {
		c := setupTestContext()
		require.NoError(t, m.SetAdminToken(c, "tok"))

		token, ok := m.AdminToken(c)
		assert.True(t, ok)
		assert.Equal(t, "tok", token)

		require.NoError(t, m.ClearAdmin(c))
		_, ok = m.AdminToken(c)
		assert.False(t, ok)
	})

	t.Run("the literal undefined is not a token", func(t *testing.T) {
		c := setupTestContext()
		require.NoError(t, m.SetAdminToken(c, "undefined"))
		_, ok := m.AdminToken(c)
		assert.False(t, ok)
	})
}

func TestManager_ChatSessionID(t *testing.T) {
	m := session.NewManager()

	t.Run("stable within a session", func(t *testing.T) {
		c := setupTestContext()
		first, err := m.ChatSessionID(c)
		require.NoError(t, err)
		second, err := m.ChatSessionID(c)
		require.NoError(t, err)

		assert.NotEmpty(t, first)
		assert.Equal(t, first, second)
	})

	t.Run("reset yields a new id", func(t *testing.T) {
		c := setupTestContext()
		first, err := m.ChatSessionID(c)
		require.NoError(t, err)

		require.NoError(t, m.ResetChat(c))
		second, err := m.ChatSessionID(c)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("clearing the admin keeps the chat id", func(t *testing.T) {
		c := setupTestContext()
		id, err := m.ChatSessionID(c)
		require.NoError(t, err)
		require.NoError(t, m.SetAdminToken(c, "tok"))
		require.NoError(t, m.ClearAdmin(c))

		again, err := m.ChatSessionID(c)
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})
}
