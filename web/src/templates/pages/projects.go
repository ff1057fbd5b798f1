package pages

import (
	"net/url"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// EmptyProjectsTitle is shown when no project matches the filters.
const EmptyProjectsTitle = "No projects found"

// ProjectsView is the data behind the projects page.
type ProjectsView struct {
	Projects   []domain.Project
	Categories []string
	Category   string
	Query      string
	Asset      components.AssetFunc
}

// Projects renders the search box and the filterable results.
func Projects(v ProjectsView) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Text("Projects")),
		components.Form(h.Method("get"), h.Action("/projects"), g.Attr("role", "search"),
			h.Input(h.Type("search"), h.ID("project-search"), h.Name("q"), h.Value(v.Query),
				h.Placeholder("Search projects..."),
				hx.Get("/projects"),
				hx.Trigger("input changed delay:300ms, search"),
				hx.Target("#project-results"),
				hx.Include("#project-results [name=category]"),
				hx.PushURL("true"),
			),
		),
		ProjectResults(v),
	})
}

// ProjectResults is the fragment htmx swaps when the filters change: the
// category chips and the grid.
func ProjectResults(v ProjectsView) g.Node {
	active := v.Category
	if active == "" {
		active = portfolio.AllCategories
	}
	chips := make([]g.Node, 0, len(v.Categories))
	for _, c := range v.Categories {
		chips = append(chips, categoryChip(c, v.Query, c == active))
	}
	return h.Div(h.ID("project-results"),
		h.Input(h.Type("hidden"), h.Name("category"), h.Value(v.Category)),
		h.Nav(h.Class("chips"), g.Group(chips)),
		ProjectGrid(v.Projects, v.Asset),
	)
}

func categoryChip(category, query string, active bool) g.Node {
	params := url.Values{}
	if category != portfolio.AllCategories {
		params.Set("category", category)
	}
	fragment := "/projects"
	if len(params) > 0 {
		fragment += "?" + params.Encode()
	}
	if query != "" {
		params.Set("q", query)
	}
	href := "/projects"
	if len(params) > 0 {
		href += "?" + params.Encode()
	}
	class := "chip"
	if active {
		class += " active"
	}
	return h.A(h.Class(class), h.Href(href),
		hx.Get(fragment),
		hx.Target("#project-results"),
		hx.Include("#project-search"),
		hx.PushURL("true"),
		g.Text(category),
	)
}

// ProjectGrid renders the project cards or the empty state.
func ProjectGrid(projects []domain.Project, asset components.AssetFunc) g.Node {
	if len(projects) == 0 {
		return components.EmptyState(EmptyProjectsTitle, "Try another category or search term.")
	}
	return h.Div(h.Class("grid"), h.ID("project-grid"),
		g.Map(projects, func(p domain.Project) g.Node { return ProjectCard(p, asset) }),
	)
}

// ProjectCard is one entry in the grid.
func ProjectCard(p domain.Project, asset components.AssetFunc) g.Node {
	img := asset(p.ImageURL)
	return h.Article(h.Class("card project-card"),
		h.A(h.Href("/project/"+url.PathEscape(p.ID.String())),
			g.If(img != "", h.Img(h.Src(img), h.Alt(p.Title), g.Attr("loading", "lazy"))),
			h.H3(g.Text(p.Title)),
		),
		h.Div(h.Class("row-actions"),
			h.Span(h.Class("muted"), g.Text(p.DisplayCategory())),
			components.StatusBadge(p.DisplayStatus()),
		),
		g.If(p.Description != "", h.P(g.Text(p.Description))),
	)
}

// ProjectDetail renders a single project, or a not-found state when found is
// false.
func ProjectDetail(p domain.Project, found bool, asset components.AssetFunc) g.Node {
	back := h.P(h.A(h.Href("/projects"), g.Text("← All projects")))
	if !found {
		return g.Group([]g.Node{
			components.EmptyState("Project not found", "It may have been moved or removed."),
			back,
		})
	}
	img := asset(p.ImageURL)
	return h.Article(h.Class("project-detail"),
		back,
		h.H1(g.Text(p.Title)),
		h.Div(h.Class("row-actions"),
			h.Span(h.Class("muted"), g.Text(p.DisplayCategory())),
			components.StatusBadge(p.DisplayStatus()),
		),
		g.If(img != "", h.Img(h.Src(img), h.Alt(p.Title))),
		g.If(p.Description != "", h.P(g.Text(p.Description))),
		g.If(p.LiveURL != "", h.P(
			h.A(h.Class("button"), h.Href(domain.ExternalURL(p.LiveURL)), h.Target("_blank"), h.Rel("noopener"), g.Text("Visit live site")),
		)),
	)
}
