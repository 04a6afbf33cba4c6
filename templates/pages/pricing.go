package pages

import (
	"context"

	"legalscholer_app_go/models"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Pricing renders the plan cards and the security note.
func Pricing(vm PricingViewModel) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, vm.Meta,
			Section(Class("pricing"),
				Div(Class("section-heading"),
					H1(g.Text(i18n.T(ctx, "pricing.heading"))),
					P(Class("muted"), g.Text(i18n.T(ctx, "pricing.subheading"))),
				),
				Div(Class("plan-grid"),
					g.Map(vm.Plans, func(p models.Plan) g.Node {
						return planCard(ctx, p)
					}),
				),
				g.If(len(vm.Guarantees) > 0, Div(Class("guarantees"),
					H2(g.Text(i18n.T(ctx, "pricing.guarantee_title"))),
					Div(Class("guarantee-grid"),
						g.Map(vm.Guarantees, func(gu models.Guarantee) g.Node {
							return Div(Class("guarantee"),
								components.Icon(gu.Icon, "guarantee-icon"),
								Div(
									H3(g.Text(gu.Title)),
									P(Class("muted"), g.Text(gu.Body)),
								),
							)
						}),
					),
				)),
			),
		)
	})
}

func planCard(ctx context.Context, p models.Plan) g.Node {
	var price g.Node
	if p.IsCustom() {
		price = Span(Class("price"), g.Text(i18n.T(ctx, "pricing.custom")))
	} else {
		price = g.Group{
			Span(Class("price"), g.Text(p.FormatPrice())),
			Span(Class("muted"), g.Text(i18n.T(ctx, "pricing.per_month"))),
		}
	}

	return Article(c.Classes{"plan-card": true, "popular": p.Popular},
		g.If(p.Popular, Span(Class("badge"), g.Text(i18n.T(ctx, "pricing.popular")))),
		H2(g.Text(p.Name)),
		P(Class("muted"), g.Text(p.Description)),
		Div(Class("plan-price"), price),
		Ul(Class("plan-features"),
			g.Map(p.Features, func(f string) g.Node {
				return Li(components.Icon("check", "check"), Span(g.Text(f)))
			}),
		),
		A(
			Href("/login"),
			c.Classes{"btn btn-block": true, "btn-primary": p.Popular, "btn-outline": !p.Popular},
			Aria("label", i18n.T(ctx, "pricing.choose", map[string]any{"plan": p.Name})),
			g.Text(i18n.T(ctx, "pricing.get_started")),
		),
	)
}
