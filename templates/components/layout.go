package components

import (
	"context"

	"legalscholer_app_go/middleware"
	"legalscholer_app_go/models"
	"legalscholer_app_go/services/i18n"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageMeta describes the document a page renders into.
type PageMeta struct {
	SEO *models.SEO
	// Path is the current route, used for the active navbar link
	Path string
}

// Layout wraps page content in the HTML document shared by every page.
func Layout(ctx context.Context, meta PageMeta, content ...g.Node) g.Node {
	lang := i18n.GetLocale(ctx)
	nonce := middleware.GetNonce(ctx)
	seo := meta.SEO
	if seo == nil {
		seo = models.DefaultSEO(i18n.T(ctx, "site.name"), "")
	}

	return c.HTML5(c.HTML5Props{
		Title:       seo.Title,
		Description: seo.Description,
		Language:    lang,
		Head: []g.Node{
			Meta(Name("robots"), Content(seo.RobotsContent())),
			seoLinks(seo),
			Link(Rel("icon"), Type("image/svg+xml"), Href(middleware.AssetURL("images/favicon.svg"))),
			Link(Rel("stylesheet"), Href(middleware.AssetURL("css/style.css"))),
			Script(Src(htmxSrc), g.Attr("nonce", nonce), Defer()),
			Script(Src(middleware.AssetURL("js/app.js")), g.Attr("nonce", nonce), Defer()),
		},
		Body: []g.Node{
			g.Attr("hx-headers", JSON(map[string]string{middleware.CSRFHeader: middleware.CSRFToken(ctx)})),
			Data("csrf-token", middleware.CSRFToken(ctx)),
			Navbar(ctx, meta.Path),
			Main(ID("main"), Class("page"), g.Group(content)),
			Footer(Class("site-footer"),
				P(g.Textf("© %s", i18n.T(ctx, "site.footer"))),
			),
		},
	})
}

func seoLinks(seo *models.SEO) g.Node {
	return g.Group{
		g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
		g.If(seo.Canonical != "", g.Map(seo.AltLocales, func(alt string) g.Node {
			return Link(Rel("alternate"), g.Attr("hreflang", alt), Href(seo.Canonical+"?lang="+alt))
		})),
		Meta(g.Attr("property", "og:title"), Content(seo.Title)),
		Meta(g.Attr("property", "og:description"), Content(seo.Description)),
		Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
		Meta(g.Attr("property", "og:locale"), Content(seo.Locale)),
		g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
		g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
	}
}
