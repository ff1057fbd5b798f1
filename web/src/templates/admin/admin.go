// Package admin renders the CMS pages. Every form posts back to the admin
// handlers, which redirect to the page they came from.
package admin

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Login is the sign-in form. next is echoed back so the user lands on the
// page they asked for.
func Login(next string) g.Node {
	return h.Div(h.Class("card"), g.Attr("style", "max-width:420px;margin:4rem auto"),
		h.H1(g.Text("Admin sign in")),
		components.Form(h.Class("stack"), h.Method("post"), h.Action("/admin/login"),
			g.If(next != "", h.Input(h.Type("hidden"), h.Name("next"), h.Value(next))),
			components.Field("Email", h.Input(h.Type("email"), h.Name("email"), h.Required(), h.AutoFocus(), g.Attr("autocomplete", "username"))),
			components.Field("Password", h.Input(h.Type("password"), h.Name("password"), h.Required(), g.Attr("autocomplete", "current-password"))),
			components.Submit("Sign in"),
		),
	)
}

// Dashboard shows totals, unread messages and the recent activity feed.
func Dashboard(d portfolio.Dashboard, events []activity.Event) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Text("Dashboard")),
		h.Div(h.Class("grid"),
			stat("Projects", len(d.Projects), "/admin/projects"),
			stat("Messages", len(d.Messages), "/admin/messages"),
			stat("Unread", d.Unread, "/admin/messages"),
			stat("Positions", len(d.Experience), "/admin/experience"),
		),
		h.H2(g.Text("Recent activity")),
		activityList(events),
	})
}

func stat(label string, n int, href string) g.Node {
	return h.A(h.Class("card"), h.Href(href),
		h.Strong(g.Attr("style", "font-size:2rem;display:block"), g.Text(strconv.Itoa(n))),
		h.Span(h.Class("muted"), g.Text(label)),
	)
}

func activityList(events []activity.Event) g.Node {
	if len(events) == 0 {
		return components.EmptyState("Nothing yet", "Changes made in the admin area show up here.")
	}
	return h.Table(
		h.TBody(g.Map(events, func(e activity.Event) g.Node {
			return h.Tr(
				h.Td(h.Class("muted"), g.Text(e.At.Local().Format("Jan 2 15:04"))),
				h.Td(g.Text(e.Kind)),
				h.Td(g.Text(e.Subject)),
			)
		})),
	)
}

// Unavailable replaces a page whose data could not be loaded.
func Unavailable(title string) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Text(title)),
		components.EmptyState("Could not load data", "The API did not respond. Try again in a moment."),
	})
}

func indexPath(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func hidden(name, value string) g.Node {
	return h.Input(h.Type("hidden"), h.Name(name), h.Value(value))
}

func idPath(base string, id domain.ID) string {
	return base + "/" + url.PathEscape(id.String())
}
