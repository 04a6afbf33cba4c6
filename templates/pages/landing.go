package pages

import (
	"context"
	"strconv"

	"legalscholer_app_go/services"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/templates/components"
	"legalscholer_app_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing renders the home page around a freshly mounted session.
func Landing(vm LandingViewModel) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, vm.Meta, landingContent(ctx, vm)...)
	})
}

func landingContent(ctx context.Context, vm LandingViewModel) []g.Node {
	p := vm.Session
	state := partials.SessionState(p, false)
	controls := partials.SearchControls(ctx, p, false)
	feedback := partials.SearchFeedback(ctx, p, false)
	carousel := partials.FeatureCarousel(p, false)
	modal := partials.UploadModal(ctx, p, false)
	overlay := partials.DragOverlay(ctx, p, false)

	return []g.Node{
		Section(ID("landing"), Class("hero"),
			Data("session-url", partials.SessionURL(p.ID, "")),
			partials.SessionPoll(p.ID),
			state,

			H1(Class("hero-title"), g.Text(i18n.T(ctx, "landing.title"))),
			P(Class("hero-subtitle shiny-text"), g.Text(p.View.Subtitle)),

			carousel,

			Div(ID("search-shell"), Class("search-shell"),
				Form(
					ID("search-form"),
					Class("search-form"),
					Role("search"),
					g.Attr("hx-post", partials.SessionURL(p.ID, "submit")),
					g.Attr("hx-swap", "none"),
					Label(For("search-input"), Class("visually-hidden"), g.Text(i18n.T(ctx, "landing.search_label"))),
					Input(
						Type("text"),
						ID("search-input"),
						Name("q"),
						AutoComplete("off"),
						MaxLength(strconv.Itoa(services.MaxQueryLength)),
						Placeholder(p.View.Placeholder),
					),
					controls,
				),
				feedback,
			),

			Input(
				Type("file"),
				ID("file-input"),
				Class("visually-hidden"),
				Name("file"),
				TabIndex("-1"),
				Aria("hidden", "true"),
			),

			Div(Class("trust"),
				P(Class("muted"), g.Text(i18n.T(ctx, "landing.trust"))),
				Ul(Class("firm-list"),
					g.Map(vm.Firms, func(firm string) g.Node {
						return Li(g.Text(firm))
					}),
				),
			),
		),
		modal,
		overlay,
	}
}
