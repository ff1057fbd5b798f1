// Package layouts wraps page content in the public and admin shells.
package layouts

import (
	"time"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/router"
	"github.com/ruebensh/portfolio/internal/view"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Page carries what every layout needs besides the content.
type Page struct {
	Title     string
	SiteTitle string
	Route     router.Route
	Flash     view.Flash
	// Settings feeds the footer. The zero value renders a plain footer.
	Settings domain.Settings
}

// hashForward sends legacy "#/path" links to the server-side resolver so old
// bookmarks keep working.
const hashForward = `(function(){var h=window.location.hash;if(h&&h.indexOf("#/")===0){window.location.replace("/go?to="+encodeURIComponent(h));}})();`

// htmxConfig lets 422 and 502 responses swap so form errors show inline.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true,"error":true},{"code":"502","swap":true,"error":true},{"code":"[45]..","swap":false,"error":true}]}`

const (
	htmxSrc       = "https://unpkg.com/htmx.org@2.0.4"
	htmxIntegrity = "sha384-HGfztofotfshcF7+8n44JQL2oJmowVChPTg48S+jvZoztPfvwD79OC/LTtG6dMp+"
)

func document(title string, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				g.El("title", g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(g.Raw(hashForward)),
				h.Script(h.Src(htmxSrc), g.Attr("integrity", htmxIntegrity), g.Attr("crossorigin", "anonymous"), h.Defer()),
				h.Script(h.Src("/static/app.js"), h.Defer()),
			),
			body,
		),
	)
}

var publicNav = []struct{ href, text string }{
	{"/", "Home"},
	{"/projects", "Projects"},
	{"/certificates", "Certificates"},
	{"/resume", "Resume"},
	{"/about", "About"},
	{"/chat", "AI Chat"},
}

// Public is the visitor-facing shell: header navigation, flash messages,
// footer and the floating chat widget.
func Public(p Page, content ...g.Node) g.Node {
	nav := make([]g.Node, 0, len(publicNav))
	for _, item := range publicNav {
		nav = append(nav, components.NavLink(item.href, item.text, p.Route.Active(item.href)))
	}
	return document(CalculateTitle(p.Title, p.SiteTitle),
		h.Body(hx.Boost("true"),
			h.Header(h.Class("site-header"),
				h.Div(h.Class("container"),
					h.A(h.Class("brand"), h.Href("/"), g.Text(brand(p))),
					h.Nav(h.Class("nav"), g.Group(nav)),
				),
			),
			h.Main(h.ID("main"),
				h.Div(h.Class("container"),
					components.Flash(p.Flash),
					g.Group(content),
				),
			),
			footer(p),
			g.If(p.Route.Name != router.Chat, components.ChatWidget()),
		),
	)
}

func brand(p Page) string {
	if p.Settings.Author != "" {
		return p.Settings.Author
	}
	if p.SiteTitle != "" {
		return p.SiteTitle
	}
	return "Portfolio"
}

func footer(p Page) g.Node {
	socials := p.Settings.Socials()
	links := make([]g.Node, 0, len(socials))
	for _, s := range socials {
		links = append(links, h.A(h.Href(s.URL), h.Target("_blank"), h.Rel("noopener"), g.Text(s.Label)))
	}
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container"),
			h.P(g.Textf("© %d %s", time.Now().Year(), brand(p))),
			g.If(len(links) > 0, h.Div(h.Class("socials"), g.Group(links))),
		),
	)
}

var adminNav = []struct{ href, text string }{
	{"/admin", "Dashboard"},
	{"/admin/projects", "Projects"},
	{"/admin/certificates", "Certificates"},
	{"/admin/skills", "Skills"},
	{"/admin/experience", "Experience"},
	{"/admin/about", "About"},
	{"/admin/settings", "Settings"},
	{"/admin/messages", "Messages"},
}

// Admin is the CMS shell with the sidebar and the logout button.
func Admin(p Page, content ...g.Node) g.Node {
	nav := make([]g.Node, 0, len(adminNav)+2)
	for _, item := range adminNav {
		nav = append(nav, components.NavLink(item.href, item.text, p.Route.Path == item.href))
	}
	nav = append(nav,
		h.A(h.Href("/"), g.Text("View site")),
		components.Form(h.Method("post"), h.Action("/admin/logout"),
			h.Button(h.Type("submit"), h.Class("ghost"), g.Text("Log out")),
		),
	)
	return document(CalculateTitle(p.Title, "Admin"),
		h.Body(hx.Boost("true"),
			h.Div(h.Class("admin"),
				h.Aside(g.Group(nav)),
				h.Section(h.Class("content"),
					components.Flash(p.Flash),
					g.Group(content),
				),
			),
		),
	)
}

// Bare is the shell for pages outside both areas, such as the login form.
func Bare(p Page, content ...g.Node) g.Node {
	return document(CalculateTitle(p.Title, p.SiteTitle),
		h.Body(
			h.Main(h.Div(h.Class("container"),
				components.Flash(p.Flash),
				g.Group(content),
			)),
		),
	)
}
