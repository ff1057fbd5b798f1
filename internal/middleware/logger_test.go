package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("falls back to the default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("injects a request scoped logger", func(t *testing.T) {
		e := echo.New()
		var got *slog.Logger
		e.GET("/", func(c echo.Context) error {
			got = FromContext(c.Request().Context())
			return c.NoContent(http.StatusOK)
		}, middleware.RequestID(), Logger)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, got)
		assert.NotSame(t, slog.Default(), got)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})
}
