package admin

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Projects lists projects and shows the create form, or the edit form when
// editing is non-nil.
func Projects(projects []domain.Project, editing *domain.Project, asset components.AssetFunc) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Text("Projects")),
		projectForm(editing, asset),
		h.H2(g.Text("All projects")),
		projectTable(projects),
	})
}

func projectTable(projects []domain.Project) g.Node {
	if len(projects) == 0 {
		return components.EmptyState("No projects yet", "Create the first one above.")
	}
	return h.Table(
		h.THead(h.Tr(h.Th(g.Text("Title")), h.Th(g.Text("Category")), h.Th(g.Text("Status")), h.Th())),
		h.TBody(g.Map(projects, func(p domain.Project) g.Node {
			return h.Tr(
				h.Td(g.Text(p.Title)),
				h.Td(g.Text(p.DisplayCategory())),
				h.Td(components.StatusBadge(p.DisplayStatus())),
				h.Td(h.Div(h.Class("row-actions"),
					h.A(h.Class("button"), h.Href("/admin/projects?edit="+p.ID.String()), g.Text("Edit")),
					components.DeleteButton(idPath("/admin/projects", p.ID), "Delete this project?"),
				)),
			)
		})),
	)
}

func projectForm(p *domain.Project, asset components.AssetFunc) g.Node {
	var (
		current domain.Project
		action  = "/admin/projects"
		title   = "New project"
		submit  = "Create project"
	)
	if p != nil {
		current = *p
		action = idPath("/admin/projects", p.ID)
		title = "Edit project"
		submit = "Save changes"
	}
	img := asset(current.ImageURL)
	return h.Div(h.Class("card"),
		h.H2(g.Text(title)),
		components.Form(h.Class("stack"), h.Method("post"), h.Action(action), h.EncType("multipart/form-data"),
			components.TextInput("Title", "title", current.Title, h.Required()),
			components.TextArea("Description", "description", current.Description),
			components.TextInput("Live URL", "liveUrl", current.LiveURL, h.Placeholder("https://")),
			components.TextInput("Category", "category", current.Category, h.Placeholder(domain.DefaultCategory)),
			components.Field("Status", h.Select(h.Name("status"),
				statusOption("Live", current.DisplayStatus()),
				statusOption("In Progress", current.DisplayStatus()),
				statusOption("Archived", current.DisplayStatus()),
			)),
			hidden("imageUrl", current.ImageURL),
			g.If(img != "", h.Img(h.Src(img), h.Alt(current.Title), g.Attr("style", "max-width:240px"))),
			components.Field("Image", h.Input(h.Type("file"), h.Name("image"), h.Accept("image/*"))),
			h.Div(h.Class("row-actions"),
				components.Submit(submit),
				g.If(p != nil, h.A(h.Href("/admin/projects"), g.Text("Cancel"))),
			),
		),
	)
}

func statusOption(value, current string) g.Node {
	return h.Option(h.Value(value), g.If(value == current, h.Selected()), g.Text(value))
}
