package admin

import (
	"strconv"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Experience edits the resume timeline.
func Experience(entries []domain.ExperienceEntry) g.Node {
	cards := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		cards = append(cards, experienceEntry(i, e))
	}
	return g.Group([]g.Node{
		h.H1(g.Text("Experience")),
		h.Div(h.Class("card"),
			h.H2(g.Text("Add position")),
			components.Form(h.Class("stack"), h.Method("post"), h.Action("/admin/experience"),
				components.TextInput("Role", "role", "", h.Required()),
				components.TextInput("Company", "company", "", h.Required()),
				components.TextInput("Logo text", "logo", "", g.Attr("maxlength", "8"), h.Placeholder("First letter of the company")),
				components.Field("Start", h.Input(h.Type("month"), h.Name("startDate"), h.Required())),
				components.Field("End (leave empty if current)", h.Input(h.Type("month"), h.Name("endDate"))),
				components.Submit("Add position"),
			),
		),
		g.If(len(cards) == 0, components.EmptyState("No positions yet", "")),
		h.Div(h.Class("timeline"), g.Group(cards)),
	})
}

func experienceEntry(i int, e domain.ExperienceEntry) g.Node {
	impacts := make([]g.Node, 0, len(e.Impacts))
	for j, t := range e.Impacts {
		impacts = append(impacts, h.Li(h.Class("row-actions"),
			h.Span(g.Text(string(t))),
			components.DeleteButton(indexPath("/admin/experience/%d/impacts/%d", i, j), "Remove this impact?"),
		))
	}
	return h.Article(h.Class("card"),
		h.Div(h.Class("row-actions"),
			h.Div(h.Class("logo"), g.Text(e.LogoText())),
			h.Div(
				h.H3(g.Text(e.Role)),
				h.P(h.Class("muted"), g.Textf("%s · %s", e.Company, e.Period())),
			),
			components.DeleteButton(indexPath("/admin/experience/%d", i), "Remove this position?"),
		),
		h.Ul(g.Group(impacts)),
		components.Form(h.Class("inline"), h.Method("post"), h.Action("/admin/experience/impacts"),
			hidden("index", strconv.Itoa(i)),
			components.TextInput("Impact", "text", "", h.Required()),
			components.Submit("Add impact"),
		),
	)
}
