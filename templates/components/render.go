package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node builder to templ.Component. The builder receives the
// render context, which carries the locale, CSP nonce and CSRF token.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Fragment renders sibling nodes without a wrapper, skipping nil ones.
// HTMX responses made of out-of-band elements use it.
func Fragment(nodes ...g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			if err := n.Render(w); err != nil {
				return err
			}
		}
		return nil
	})
}
