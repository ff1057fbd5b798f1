package rendering_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

func TestUniversalRenderer(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	t.Run("renders gomponents nodes", func(t *testing.T) {
		b, err := r.RenderComponent(context.Background(), h.P(h.Class("lead")))
		require.NoError(t, err)
		assert.Equal(t, `<p class="lead"></p>`, string(b))
	})

	t.Run("renders templ components", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<em>templ</em>")
			return err
		})
		b, err := r.RenderComponent(context.Background(), comp)
		require.NoError(t, err)
		assert.Equal(t, "<em>templ</em>", string(b))
	})

	t.Run("rejects other values", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.Error(t, err)
	})

	t.Run("writes pages with status and content type", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, r.RenderPage(c, http.StatusNotFound, h.H1()))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Equal(t, "<h1></h1>", rec.Body.String())
	})
}
