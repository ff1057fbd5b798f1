package admin

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Messages is the contact inbox with search, read marking, replies and
// deletion.
func Messages(messages []domain.Message, query string, unread int) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Textf("Messages (%d unread)", unread)),
		components.Form(h.Class("inline"), h.Method("get"), h.Action("/admin/messages"),
			h.Input(h.Type("search"), h.Name("q"), h.Value(query), h.Placeholder("Search name, email or text")),
			components.Submit("Search"),
		),
		messageTable(messages, query),
	})
}

func messageTable(messages []domain.Message, query string) g.Node {
	if len(messages) == 0 {
		if query != "" {
			return components.EmptyState("No matching messages", "")
		}
		return components.EmptyState("Inbox is empty", "")
	}
	return h.Table(
		h.THead(h.Tr(h.Th(g.Text("From")), h.Th(g.Text("Message")), h.Th(g.Text("Received")), h.Th())),
		h.TBody(g.Map(messages, messageRow)),
	)
}

func messageRow(m domain.Message) g.Node {
	base := idPath("/admin/messages", m.ID)
	received := ""
	if !m.CreatedAt.IsZero() {
		received = m.CreatedAt.Local().Format("Jan 2, 2006 15:04")
	}
	return h.Tr(g.If(!m.Read, h.Class("unread")),
		h.Td(h.Strong(g.Text(m.Name)), h.Br(), h.A(h.Href("mailto:"+m.Email), g.Text(m.Email))),
		h.Td(h.P(g.Text(m.Text)),
			h.Details(
				h.Summary(g.Text("Reply")),
				components.Form(h.Class("stack"), h.Method("post"), h.Action(base+"/reply"),
					components.TextArea("Reply", "text", "", h.Required()),
					components.Submit("Send reply"),
				),
			),
		),
		h.Td(h.Class("muted"), g.Text(received)),
		h.Td(h.Div(h.Class("row-actions"),
			g.If(!m.Read, components.Form(h.Method("post"), h.Action(base+"/read"),
				h.Button(h.Type("submit"), h.Class("ghost"), g.Text("Mark read")),
			)),
			components.DeleteButton(base, "Delete this message?"),
		)),
	)
}
