package pages

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Certificates renders the certificate gallery.
func Certificates(certs []domain.Certificate, asset components.AssetFunc) g.Node {
	if len(certs) == 0 {
		return g.Group([]g.Node{
			h.H1(g.Text("Certificates")),
			components.EmptyState("No certificates yet", "Check back soon."),
		})
	}
	return g.Group([]g.Node{
		h.H1(g.Text("Certificates")),
		h.Div(h.Class("grid"),
			g.Map(certs, func(c domain.Certificate) g.Node { return certificateCard(c, asset) }),
		),
	})
}

func certificateCard(c domain.Certificate, asset components.AssetFunc) g.Node {
	file := asset(c.FileURL)
	return h.Article(h.Class("card"),
		g.If(file != "" && !c.IsPDF(), h.Img(h.Src(file), h.Alt(c.Title), g.Attr("loading", "lazy"))),
		h.H3(g.Text(c.Title)),
		h.P(h.Class("muted"), g.Textf("%s · %s", c.Issuer, domain.FormatMonth(c.Date))),
		g.If(c.Description != "", h.P(g.Text(c.Description))),
		g.If(file != "", h.A(h.Href(file), h.Target("_blank"), h.Rel("noopener"), g.Text("Open certificate"))),
	)
}
