package admin

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About edits the story, education, certifications and the three text lists.
func About(a domain.AboutContent) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Text("About")),
		h.Div(h.Class("card"),
			h.H2(g.Text("Story")),
			components.Form(h.Class("stack"), h.Method("post"), h.Action("/admin/about/story"),
				components.TextArea("Story", "story", a.Story, g.Attr("rows", "10")),
				components.Submit("Save story"),
			),
		),
		educationCard(a.Education),
		aboutCertificatesCard(a.Certificates),
		h.Div(h.Class("grid"),
			aboutListCard("Values", domain.AboutValues, a.Values),
			aboutListCard("Currently learning", domain.AboutCurrentlyLearning, a.CurrentlyLearning),
			aboutListCard("Currently working on", domain.AboutCurrentlyWorking, a.CurrentlyWorking),
		),
	})
}

func educationCard(items []domain.Education) g.Node {
	rows := make([]g.Node, 0, len(items))
	for i, e := range items {
		rows = append(rows, h.Li(h.Class("row-actions"),
			h.Span(g.Textf("%s, %s %s", e.Degree, e.Institution, e.Year)),
			components.DeleteButton(indexPath("/admin/about/education/%d", i), "Remove this degree?"),
		))
	}
	return h.Div(h.Class("card"),
		h.H2(g.Text("Education")),
		h.Ul(g.Group(rows)),
		components.Form(h.Class("inline"), h.Method("post"), h.Action("/admin/about/education"),
			components.TextInput("Degree", "degree", "", h.Required()),
			components.TextInput("Institution", "institution", "", h.Required()),
			components.TextInput("Year", "year", ""),
			components.Submit("Add"),
		),
	)
}

func aboutCertificatesCard(items []domain.AboutCertificate) g.Node {
	rows := make([]g.Node, 0, len(items))
	for i, c := range items {
		rows = append(rows, h.Li(h.Class("row-actions"),
			h.Span(g.Textf("%s, %s %s", c.Name, c.Issuer, c.Year)),
			components.DeleteButton(indexPath("/admin/about/certificates/%d", i), "Remove this certification?"),
		))
	}
	return h.Div(h.Class("card"),
		h.H2(g.Text("Certifications")),
		h.Ul(g.Group(rows)),
		components.Form(h.Class("inline"), h.Method("post"), h.Action("/admin/about/certificates"),
			components.TextInput("Name", "name", "", h.Required()),
			components.TextInput("Issuer", "issuer", ""),
			components.TextInput("Year", "year", ""),
			components.Submit("Add"),
		),
	)
}

func aboutListCard(title, list string, items []domain.TextItem) g.Node {
	rows := make([]g.Node, 0, len(items))
	for i, t := range items {
		rows = append(rows, h.Li(h.Class("row-actions"),
			h.Span(g.Text(string(t))),
			components.DeleteButton(indexPath("/admin/about/items/%s/%d", list, i), "Remove this item?"),
		))
	}
	return h.Div(h.Class("card"),
		h.H3(g.Text(title)),
		h.Ul(g.Group(rows)),
		components.Form(h.Class("inline"), h.Method("post"), h.Action("/admin/about/items"),
			hidden("list", list),
			components.TextInput("New item", "text", "", h.Required()),
			components.Submit("Add"),
		),
	)
}
