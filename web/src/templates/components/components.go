// Package components holds the small gomponents building blocks shared by
// public and admin pages.
package components

import (
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/ruebensh/portfolio/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// AssetFunc resolves a stored asset path into a URL the browser can load.
type AssetFunc func(path string) string

// Form is the <form> element.
func Form(children ...g.Node) g.Node {
	return g.El("form", children...)
}

// Field wraps an input with its caption.
func Field(caption string, input g.Node) g.Node {
	return g.El("label", g.Text(caption), input)
}

// TextInput renders a labelled text input. Extra nodes are added to the input.
func TextInput(caption, name, value string, extra ...g.Node) g.Node {
	return Field(caption, h.Input(
		h.Type("text"), h.Name(name), h.Value(value),
		g.Group(extra),
	))
}

// TextArea renders a labelled textarea.
func TextArea(caption, name, value string, extra ...g.Node) g.Node {
	return Field(caption, h.Textarea(h.Name(name), g.Group(extra), g.Text(value)))
}

// Submit renders a submit button.
func Submit(text string, extra ...g.Node) g.Node {
	return h.Button(h.Type("submit"), g.Group(extra), g.Text(text))
}

// DeleteButton issues DELETE action through htmx after a confirmation.
// Without JavaScript the form posts to action + "/delete" instead.
func DeleteButton(action, confirm string) g.Node {
	return Form(h.Method("post"), h.Action(action+"/delete"),
		hx.Delete(action),
		hx.Confirm(confirm),
		h.Button(h.Type("submit"), h.Class("danger"), g.Text("Delete")),
	)
}

// Flash renders queued success and error messages.
func Flash(f view.Flash) g.Node {
	if f.Empty() {
		return nil
	}
	nodes := make([]g.Node, 0, len(f.Success)+len(f.Error))
	for _, msg := range f.Success {
		nodes = append(nodes, h.Div(h.Class("flash flash-success"), g.Attr("role", "status"), g.Text(msg)))
	}
	for _, msg := range f.Error {
		nodes = append(nodes, h.Div(h.Class("flash flash-error"), g.Attr("role", "alert"), g.Text(msg)))
	}
	return h.Div(h.ID("flash"), g.Group(nodes))
}

// Alert is a single inline message, used for htmx form responses.
func Alert(success bool, msg string) g.Node {
	class := "flash flash-error"
	if success {
		class = "flash flash-success"
	}
	return h.Div(h.Class(class), g.Text(msg))
}

// EmptyState is shown when a list has nothing to display.
func EmptyState(title, text string) g.Node {
	return h.Div(h.Class("empty"),
		h.H3(g.Text(title)),
		g.If(text != "", h.P(g.Text(text))),
	)
}

// StatusBadge renders a project status pill.
func StatusBadge(status string) g.Node {
	return h.Span(h.Class("badge badge-"+portfolio.StatusBadge(status)), g.Text(status))
}

// NavLink renders a link marked active when it matches the current page.
func NavLink(href, text string, active bool) g.Node {
	return h.A(h.Href(href), g.If(active, h.Class("active")), g.Text(text))
}
