package pages

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Resume embeds the CV document with a download link.
func Resume(s domain.Settings, asset components.AssetFunc) g.Node {
	cv := asset(s.CVURL)
	if cv == "" {
		return g.Group([]g.Node{
			h.H1(g.Text("Resume")),
			components.EmptyState("Resume not available", "The CV has not been uploaded yet."),
		})
	}
	return g.Group([]g.Node{
		h.Div(h.Class("row-actions"),
			h.H1(g.Text("Resume")),
			h.A(h.Class("button"), h.Href(cv), g.Attr("download"), g.Text("Download PDF")),
		),
		h.IFrame(h.Class("document"), h.Src(cv), g.Attr("title", "Resume")),
	})
}
