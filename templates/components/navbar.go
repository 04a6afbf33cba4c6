package components

import (
	"context"

	"legalscholer_app_go/services/i18n"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	href string
	key  string
}

var navLinks = []navLink{
	{"/", "nav.home"},
	{"/pricing", "nav.pricing"},
	{"/login", "nav.sign_in"},
}

// Navbar renders the site header with the main links and the language switch.
func Navbar(ctx context.Context, path string) g.Node {
	links := g.Map(navLinks, func(l navLink) g.Node {
		return A(
			Href(l.href),
			c.Classes{"nav-link": true, "active": l.href == path},
			g.If(l.href == path, Aria("current", "page")),
			g.Text(i18n.T(ctx, l.key)),
		)
	})

	return Header(Class("navbar"),
		Nav(Class("navbar-inner"), Aria("label", i18n.T(ctx, "site.name")),
			A(Href("/"), Class("brand"),
				Icon("scale", "brand-icon"),
				Span(g.Text(i18n.T(ctx, "site.name"))),
			),
			Button(
				Type("button"),
				Class("navbar-toggle"),
				ID("navbar-toggle"),
				Aria("controls", "navbar-menu"),
				Aria("expanded", "false"),
				Aria("label", i18n.T(ctx, "nav.open_menu")),
				Data("label-open", i18n.T(ctx, "nav.open_menu")),
				Data("label-close", i18n.T(ctx, "nav.close_menu")),
				Icon("menu", ""),
			),
			Div(ID("navbar-menu"), Class("navbar-menu"),
				links,
				A(Href("/signup"), Class("btn btn-primary"), g.Text(i18n.T(ctx, "nav.get_started"))),
				A(
					Href(path+"?lang="+i18n.T(ctx, "nav.language_code")),
					Class("nav-link lang-switch"),
					g.Attr("hreflang", i18n.T(ctx, "nav.language_code")),
					Icon("globe", ""),
					Span(g.Text(i18n.T(ctx, "nav.language"))),
				),
			),
		),
	)
}
