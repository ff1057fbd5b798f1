// Package pages renders the public pages. Each function returns the page
// content; handlers wrap it in layouts.Public.
package pages

import (
	"fmt"
	"strings"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Home renders the landing page: hero, profile card, skills, experience and
// the contact form.
func Home(data portfolio.Home, asset components.AssetFunc) g.Node {
	s := data.Settings
	return g.Group([]g.Node{
		h.Section(h.Class("hero"),
			h.Div(
				h.P(h.Class("muted"), g.Text(s.MainStack)),
				h.H1(g.Text(firstNonEmpty(s.Title, s.Author, "Welcome"))),
				g.If(s.Description != "", h.P(g.Text(s.Description))),
				h.Div(h.Class("row-actions"),
					h.A(h.Class("button"), h.Href("/projects"), g.Text("View projects")),
					h.A(h.Class("button"), h.Href("/resume"), g.Text("Resume")),
				),
			),
			ProfileCard(s, asset),
		),
		skills(data.Skills),
		experience(data.Experience),
		ContactSection(),
	})
}

// ProfileCard shows the avatar, name and headline stats.
func ProfileCard(s domain.Settings, asset components.AssetFunc) g.Node {
	avatar := asset(s.AvatarURL)
	return h.Div(h.Class("card profile"),
		g.If(avatar != "", h.Img(h.Src(avatar), h.Alt(s.Author))),
		h.H3(g.Text(s.Author)),
		g.If(s.Email != "", h.P(h.A(h.Href("mailto:"+s.Email), g.Text(s.Email)))),
		h.Div(h.Class("stats"),
			h.Div(h.Strong(g.Text(s.ProjectCount)), h.Span(h.Class("muted"), g.Text("Projects"))),
			h.Div(h.Strong(g.Text(s.ExperienceYears)), h.Span(h.Class("muted"), g.Text("Experience"))),
		),
	)
}

func skills(categories []domain.SkillCategory) g.Node {
	if len(categories) == 0 {
		return nil
	}
	return h.Section(h.ID("skills"),
		h.H2(g.Text("Skills")),
		h.Div(h.Class("grid"),
			g.Map(categories, func(c domain.SkillCategory) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(c.Category)),
					g.Map(c.Items, func(s domain.Skill) g.Node {
						return h.Div(
							h.Div(h.Class("row-actions"), h.Span(g.Text(s.Name)), h.Span(h.Class("muted"), g.Textf("%d%%", s.Level))),
							h.Div(h.Class("skill-bar"), h.Span(g.Attr("style", fmt.Sprintf("width:%d%%", s.Level)))),
						)
					}),
				)
			}),
		),
	)
}

func experience(entries []domain.ExperienceEntry) g.Node {
	if len(entries) == 0 {
		return nil
	}
	return h.Section(h.ID("experience"),
		h.H2(g.Text("Experience")),
		h.Div(h.Class("timeline"),
			g.Map(entries, ExperienceCard),
		),
	)
}

// ExperienceCard renders one resume position.
func ExperienceCard(e domain.ExperienceEntry) g.Node {
	return h.Article(h.Class("card"),
		h.Div(h.Class("row-actions"),
			h.Div(h.Class("logo"), g.Text(e.LogoText())),
			h.Div(
				h.H3(g.Text(e.Role)),
				h.P(h.Class("muted"), g.Textf("%s · %s", e.Company, e.Period())),
			),
		),
		g.If(len(e.Impacts) > 0, h.Ul(
			g.Map(e.Impacts, func(t domain.TextItem) g.Node { return h.Li(g.Text(string(t))) }),
		)),
	)
}

// ContactSection is the contact form. htmx swaps the result message into
// place; without JavaScript the form posts and redirects back.
func ContactSection() g.Node {
	return h.Section(h.ID("contact"),
		h.H2(g.Text("Get in touch")),
		components.Form(h.Class("stack"), h.Method("post"), h.Action("/contact"),
			hx.Post("/contact"),
			hx.Target("#contact-result"),
			hx.Swap("innerHTML"),
			g.Attr("hx-disabled-elt", "find button"),
			g.Attr("hx-on::after-request", "if(event.detail.successful) this.reset()"),
			h.Div(h.ID("contact-result")),
			components.TextInput("Name", "name", "", h.Required()),
			components.Field("Email", h.Input(h.Type("email"), h.Name("email"), h.Required())),
			components.TextArea("Message", "message", "", h.Required()),
			components.Submit("Send message"),
		),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
