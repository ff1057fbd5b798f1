package admin

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Settings is the site profile form with avatar and CV uploads.
func Settings(s domain.Settings, asset components.AssetFunc) g.Node {
	avatar := asset(s.AvatarURL)
	cv := asset(s.CVURL)
	return g.Group([]g.Node{
		h.H1(g.Text("Settings")),
		components.Form(h.Class("stack card"), h.Method("post"), h.Action("/admin/settings"), h.EncType("multipart/form-data"),
			h.H2(g.Text("Profile")),
			components.TextInput("Author", "author", s.Author),
			components.TextInput("Headline", "title", s.Title),
			components.TextArea("Description", "description", s.Description),
			components.TextInput("Main stack", "mainStack", s.MainStack),
			components.TextInput("Project count", "projectCount", s.ProjectCount, h.Placeholder(domain.DefaultProjectCount)),
			components.TextInput("Experience", "experienceYears", s.ExperienceYears, h.Placeholder(domain.DefaultExperienceYears)),

			h.H2(g.Text("Contact")),
			components.Field("Email", h.Input(h.Type("email"), h.Name("email"), h.Value(s.Email))),
			components.TextInput("Phone", "phone", s.Phone),
			components.TextInput("GitHub", "github", s.Github),
			components.TextInput("LinkedIn", "linkedin", s.Linkedin),
			components.TextInput("Telegram", "telegram", s.Telegram),
			components.TextInput("Instagram", "instagram", s.Instagram),

			h.H2(g.Text("Files")),
			hidden("avatarUrl", s.AvatarURL),
			g.If(avatar != "", h.Img(h.Src(avatar), h.Alt("Avatar"), g.Attr("style", "max-width:120px;border-radius:50%"))),
			components.Field("Avatar", h.Input(h.Type("file"), h.Name("avatar"), h.Accept("image/*"))),
			hidden("cvUrl", s.CVURL),
			g.If(cv != "", h.P(h.A(h.Href(cv), h.Target("_blank"), g.Text("Current CV")))),
			components.Field("CV (PDF)", h.Input(h.Type("file"), h.Name("cv"), h.Accept("application/pdf"))),

			components.Submit("Save settings"),
		),
	})
}
