package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// templNode lets a templ.Component sit inside a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// Templ adapts a templ component into a gomponents node. gomponents does not
// pass a context while rendering, so the request context is captured here.
func Templ(ctx context.Context, component templ.Component) g.Node {
	return templNode{ctx: ctx, component: component}
}

// Gomponent adapts a gomponents node into a templ component.
func Gomponent(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
