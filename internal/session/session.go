// Package session owns the per-browser state kept in the signed session
// cookie: the admin access token and the chat session id.
package session

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "portfolio-session"

	keyToken       = "token"
	keyChatSession = "ruebensh_session_id"

	maxAge = 7 * 24 * 60 * 60
)

// NewStore builds the cookie store. The encryption key is optional; when set
// the cookie is encrypted as well as signed.
func NewStore(secret, encryptionKey string, secure bool) *sessions.CookieStore {
	keys := [][]byte{[]byte(secret)}
	if encryptionKey != "" {
		keys = append(keys, []byte(encryptionKey))
	}
	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Manager reads and writes session values. It requires the echo-contrib
// session middleware upstream.
type Manager struct {
	name string
}

// NewManager returns a manager for the default session cookie.
func NewManager() *Manager {
	return &Manager{name: CookieName}
}

func (m *Manager) get(c echo.Context) (*sessions.Session, error) {
	sess, err := echosession.Get(m.name, c)
	if err != nil {
		if sess == nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		// A cookie signed with an old secret decodes as a fresh session.
		slog.DebugContext(c.Request().Context(), "discarding unreadable session", "error", err)
	}
	return sess, nil
}

func (m *Manager) save(c echo.Context, sess *sessions.Session) error {
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// AdminToken returns the stored admin access token.
func (m *Manager) AdminToken(c echo.Context) (string, bool) {
	sess, err := m.get(c)
	if err != nil {
		return "", false
	}
	token, ok := sess.Values[keyToken].(string)
	if !ok || token == "" || token == "undefined" {
		return "", false
	}
	return token, true
}

// SetAdminToken stores the token returned by a successful login.
func (m *Manager) SetAdminToken(c echo.Context, token string) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}
	sess.Values[keyToken] = token
	return m.save(c, sess)
}

// ClearAdmin forgets the admin token. The chat session survives.
func (m *Manager) ClearAdmin(c echo.Context) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}
	if _, ok := sess.Values[keyToken]; !ok {
		return nil
	}
	delete(sess.Values, keyToken)
	return m.save(c, sess)
}

// ChatSessionID returns the browser's chat session id, generating and
// persisting one on first use.
func (m *Manager) ChatSessionID(c echo.Context) (string, error) {
	sess, err := m.get(c)
	if err != nil {
		return "", err
	}
	if id, ok := sess.Values[keyChatSession].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values[keyChatSession] = id
	if err := m.save(c, sess); err != nil {
		return "", err
	}
	return id, nil
}

// ResetChat discards the chat session id so the next turn starts a new
// conversation.
func (m *Manager) ResetChat(c echo.Context) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}
	delete(sess.Values, keyChatSession)
	return m.save(c, sess)
}
