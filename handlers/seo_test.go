package handlers

import (
	"net/http"
	"testing"

	"legalscholer_app_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSEO(t *testing.T) {
	require.NoError(t, i18n.Load())

	t.Run("Public page", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/pricing", nil)
		seo := GetSEO(c, "pricing")

		assert.Equal(t, "Pricing | LegalScholer", seo.Title)
		assert.Equal(t, testAppURL+"/pricing", seo.Canonical)
		assert.Equal(t, testAppURL+defaultOGImagePath, seo.OGImage)
		assert.Equal(t, "en", seo.Locale)
		assert.Equal(t, []string{"es"}, seo.AltLocales)
		assert.False(t, seo.NoIndex)
	})

	t.Run("Spanish", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/login", nil)
		c.Set("locale", "es")
		seo := GetSEO(c, "login")

		assert.Equal(t, "es", seo.Locale)
		assert.Equal(t, []string{"en"}, seo.AltLocales)
		assert.NotEqual(t, "Login | LegalScholer", seo.Title)
	})

	t.Run("Unknown page is not indexed", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/nope", nil)
		seo := GetSEO(c, "not_found")

		assert.True(t, seo.NoIndex)
		assert.Empty(t, seo.Canonical)
	})
}
