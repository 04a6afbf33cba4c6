package pages

import (
	"context"

	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NotFound renders the 404 page.
func NotFound(meta components.PageMeta) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, meta,
			Section(Class("not-found"),
				P(Class("not-found-code"), g.Text(i18n.T(ctx, "not_found.code"))),
				H1(g.Text(i18n.T(ctx, "not_found.title"))),
				A(Href("/"), Class("btn btn-primary"), g.Text(i18n.T(ctx, "not_found.back"))),
			),
		)
	})
}
