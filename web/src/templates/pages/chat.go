package pages

import (
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Chat is the full-page assistant.
func Chat() g.Node {
	return h.Div(h.Class("chat-page"),
		h.H1(g.Text("AI Assistant")),
		h.P(h.Class("muted"), g.Text("Ask about experience, projects or anything else on this site.")),
		components.ChatPanel("chat-page"),
	)
}
