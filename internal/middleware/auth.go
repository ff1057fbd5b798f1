package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/internal/view"
)

// AdminTokenKey is the echo context key holding the admin bearer token.
const AdminTokenKey = "admin_token"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// MsgSessionExpired is flashed when a stored token turns out to be stale.
const MsgSessionExpired = "Your session has expired. Please sign in again."

// now is swapped in tests.
var now = time.Now

// RequireAdmin guards the admin area. A request passes when the session holds
// a token that is not a JWT past its exp claim. Tokens that cannot be parsed
// as JWTs are passed through; the backend is the final judge.
func RequireAdmin(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := sessions.AdminToken(c)
			if !ok {
				return view.Redirect(c, LoginURL(c))
			}
			if TokenExpired(token, now()) {
				FromContext(c.Request().Context()).Info("admin token expired")
				if err := sessions.ClearAdmin(c); err != nil {
					slog.WarnContext(c.Request().Context(), "failed to clear admin session", "error", err)
				}
				view.SetFlashError(c, MsgSessionExpired)
				return view.Redirect(c, LoginURL(c))
			}

			c.Set(AdminTokenKey, token)
			return next(c)
		}
	}
}

// AdminToken returns the token RequireAdmin stored on the context.
func AdminToken(c echo.Context) string {
	token, _ := c.Get(AdminTokenKey).(string)
	return token
}

// LoginURL builds the login redirect, remembering the page for GET requests.
func LoginURL(c echo.Context) string {
	if c.Request().Method != http.MethodGet {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
}

// TokenExpired reports whether token is a JWT whose exp claim is not after t.
// The signature is not checked; only the backend holds the key.
func TokenExpired(token string, t time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(t)
}
