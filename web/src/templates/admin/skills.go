package admin

import (
	"strconv"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Skills edits the skill categories and their items.
func Skills(categories []domain.SkillCategory) g.Node {
	cards := make([]g.Node, 0, len(categories))
	for i, c := range categories {
		cards = append(cards, skillCategory(i, c))
	}
	return g.Group([]g.Node{
		h.H1(g.Text("Skills")),
		components.Form(h.Class("inline"), h.Method("post"), h.Action("/admin/skills/categories"),
			components.TextInput("New category", "category", "", h.Required(), h.Placeholder("Frontend")),
			components.Submit("Add category"),
		),
		g.If(len(cards) == 0, components.EmptyState("No skill categories", "Add a category to start listing skills.")),
		h.Div(h.Class("grid"), g.Group(cards)),
	})
}

func skillCategory(i int, c domain.SkillCategory) g.Node {
	rows := make([]g.Node, 0, len(c.Items))
	for j, s := range c.Items {
		rows = append(rows, h.Li(h.Class("row-actions"),
			h.Span(g.Textf("%s (%d%%)", s.Name, s.Level)),
			components.DeleteButton(indexPath("/admin/skills/categories/%d/items/%d", i, j), "Remove "+s.Name+"?"),
		))
	}
	return h.Div(h.Class("card"),
		h.Div(h.Class("row-actions"),
			h.H3(g.Text(c.Category)),
			components.DeleteButton(indexPath("/admin/skills/categories/%d", i), "Remove the "+c.Category+" category?"),
		),
		h.Ul(g.Group(rows)),
		components.Form(h.Class("inline"), h.Method("post"), h.Action("/admin/skills/items"),
			hidden("index", strconv.Itoa(i)),
			components.TextInput("Skill", "name", "", h.Required()),
			components.Field("Level", h.Input(h.Type("number"), h.Name("level"), h.Min("0"), h.Max("100"), h.Value("80"))),
			components.Submit("Add"),
		),
	)
}
