package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"legalscholer_app_go/middleware"
	"legalscholer_app_go/models"
	"legalscholer_app_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestIcon(t *testing.T) {
	out := renderString(t, Icon("mic", "big"))
	assert.Contains(t, out, `class="icon big"`)
	assert.Contains(t, out, iconPaths["mic"])

	unknown := renderString(t, Icon("nope", `"><script>`))
	assert.Contains(t, unknown, iconPaths["sparkles"])
	assert.NotContains(t, unknown, "<script>")
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"s":"a \"quoted\" value"}`, JSON(map[string]string{"s": `a "quoted" value`}))
	assert.Equal(t, "{}", JSON(map[string]any{"bad": func() {}}))
}

func TestFragment(t *testing.T) {
	var buf bytes.Buffer
	err := Fragment(P(g.Text("a")), nil, Span(g.Text("b"))).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p><span>b</span>", buf.String())
}

func TestLayout(t *testing.T) {
	require.NoError(t, i18n.Load())

	ctx := context.WithValue(context.Background(), middleware.NonceKey, "n0nce")
	seo := models.DefaultSEO("Pricing | LegalScholer", "Plans").
		WithCanonical("https://legalscholer.test/pricing")

	var buf bytes.Buffer
	err := Component(func(ctx context.Context) g.Node {
		return Layout(ctx, PageMeta{SEO: seo, Path: "/pricing"}, P(g.Text("content")))
	}).Render(ctx, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>Pricing | LegalScholer</title>")
	assert.Contains(t, out, `nonce="n0nce"`)
	assert.Contains(t, out, `<link rel="alternate" hreflang="es" href="https://legalscholer.test/pricing?lang=es">`)
	assert.Contains(t, out, `<main id="main" class="page"><p>content</p></main>`)
	assert.Contains(t, out, `content="index, follow"`)
}

func TestLayoutWithoutSEO(t *testing.T) {
	require.NoError(t, i18n.Load())

	out := renderString(t, Layout(context.Background(), PageMeta{Path: "/"}))
	assert.Contains(t, out, "<title>LegalScholer</title>")
	assert.NotContains(t, out, `rel="canonical"`)
}

func TestNavbar(t *testing.T) {
	require.NoError(t, i18n.Load())

	out := renderString(t, Navbar(context.Background(), "/pricing"))
	assert.Contains(t, out, `<a href="/pricing" class="active nav-link" aria-current="page">Pricing</a>`)
	assert.Contains(t, out, `href="/pricing?lang=es"`)
	assert.Contains(t, out, "Español")

	es := renderString(t, Navbar(i18n.WithLocale(context.Background(), "es"), "/"))
	assert.Contains(t, es, `href="/?lang=en"`)
}
