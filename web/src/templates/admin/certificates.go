package admin

import (
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Certificates lists certificates with the upload form.
func Certificates(certs []domain.Certificate, asset components.AssetFunc) g.Node {
	return g.Group([]g.Node{
		h.H1(g.Text("Certificates")),
		h.Div(h.Class("card"),
			h.H2(g.Text("Upload certificate")),
			components.Form(h.Class("stack"), h.Method("post"), h.Action("/admin/certificates"), h.EncType("multipart/form-data"),
				components.TextInput("Title", "title", "", h.Required()),
				components.TextInput("Issuer", "issuer", "", h.Required()),
				components.Field("Date", h.Input(h.Type("date"), h.Name("date"), h.Required())),
				components.TextArea("Description", "description", "", h.Placeholder("What does this certificate cover? The assistant reads this too.")),
				components.Field("File", h.Input(h.Type("file"), h.Name("file"), h.Accept("image/*,application/pdf"), h.Required())),
				components.Submit("Upload"),
			),
		),
		h.H2(g.Text("All certificates")),
		certificateTable(certs, asset),
	})
}

func certificateTable(certs []domain.Certificate, asset components.AssetFunc) g.Node {
	if len(certs) == 0 {
		return components.EmptyState("No certificates yet", "")
	}
	return h.Table(
		h.THead(h.Tr(h.Th(g.Text("Title")), h.Th(g.Text("Issuer")), h.Th(g.Text("Date")), h.Th())),
		h.TBody(g.Map(certs, func(c domain.Certificate) g.Node {
			return h.Tr(
				h.Td(h.A(h.Href(asset(c.FileURL)), h.Target("_blank"), g.Text(c.Title))),
				h.Td(g.Text(c.Issuer)),
				h.Td(g.Text(domain.FormatMonth(c.Date))),
				h.Td(components.DeleteButton(idPath("/admin/certificates", c.ID), "Delete this certificate?")),
			)
		})),
	)
}
