package components_test

import (
	"strings"
	"testing"

	"github.com/ruebensh/portfolio/internal/view"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestFlash(t *testing.T) {
	assert.Nil(t, components.Flash(view.Flash{}))

	out := render(t, components.Flash(view.Flash{Success: []string{"Saved."}, Error: []string{"Nope <b>"}}))
	assert.Contains(t, out, `<div class="flash flash-success" role="status">Saved.</div>`)
	assert.Contains(t, out, "Nope &lt;b&gt;")
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, `<span class="badge badge-green">Live</span>`, render(t, components.StatusBadge("Live")))
	assert.Contains(t, render(t, components.StatusBadge("In Progress")), "badge-blue")
	assert.Contains(t, render(t, components.StatusBadge("Archived")), "badge-muted")
}

func TestDeleteButton(t *testing.T) {
	out := render(t, components.DeleteButton("/admin/projects/7", "Delete?"))
	assert.Contains(t, out, `action="/admin/projects/7/delete"`)
	assert.Contains(t, out, `hx-delete="/admin/projects/7"`)
	assert.Contains(t, out, `hx-confirm="Delete?"`)
}

func TestChat(t *testing.T) {
	t.Run("exchange keeps visitor first", func(t *testing.T) {
		out := render(t, components.ChatExchange("hi", "hello"))
		assert.Less(t, strings.Index(out, `data-role="user"`), strings.Index(out, `data-role="ai"`))
	})

	t.Run("panel starts with the greeting", func(t *testing.T) {
		out := render(t, components.ChatPanel("p"))
		assert.Contains(t, out, `id="p-log"`)
		assert.Contains(t, out, components.Greeting)
		assert.Contains(t, out, `hx-post="/chat/messages"`)
		assert.Contains(t, out, `hx-target="#p-log"`)
		assert.Contains(t, out, `hx-post="/chat/reset"`)
	})
}
