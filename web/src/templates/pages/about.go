package pages

import (
	"strings"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About renders the story page. ok is false when the content could not be
// loaded, in which case a fallback message replaces it.
func About(p portfolio.AboutPage, ok bool, asset components.AssetFunc) g.Node {
	if !ok {
		return g.Group([]g.Node{
			h.H1(g.Text("About")),
			components.EmptyState("This page is unavailable right now", "Please try again later."),
		})
	}
	a := p.About
	return g.Group([]g.Node{
		h.Section(h.Class("hero"),
			h.Div(
				h.H1(g.Text("About me")),
				g.Group(paragraphs(a.Story)),
			),
			ProfileCard(p.Settings, asset),
		),
		g.If(len(a.Education) > 0, h.Section(
			h.H2(g.Text("Education")),
			h.Div(h.Class("timeline"), g.Map(a.Education, func(e domain.Education) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(e.Degree)),
					h.P(h.Class("muted"), g.Text(joinNonEmpty(" · ", e.Institution, e.Year))),
				)
			})),
		)),
		g.If(len(a.Certificates) > 0, h.Section(
			h.H2(g.Text("Certifications")),
			h.Ul(g.Map(a.Certificates, func(c domain.AboutCertificate) g.Node {
				return h.Li(h.Strong(g.Text(c.Name)), h.Span(h.Class("muted"), g.Text(" "+joinNonEmpty(" · ", c.Issuer, c.Year))))
			})),
		)),
		h.Div(h.Class("grid"),
			textList("Values", a.Values),
			textList("Currently learning", a.CurrentlyLearning),
			textList("Currently working on", a.CurrentlyWorking),
		),
	})
}

func textList(title string, items []domain.TextItem) g.Node {
	if len(items) == 0 {
		return nil
	}
	return h.Div(h.Class("card"),
		h.H3(g.Text(title)),
		h.Ul(g.Map(items, func(t domain.TextItem) g.Node { return h.Li(g.Text(string(t))) })),
	)
}

func paragraphs(text string) []g.Node {
	var out []g.Node
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, h.P(g.Text(line)))
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
