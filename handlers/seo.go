package handlers

import (
	"legalscholer_app_go/config"
	"legalscholer_app_go/middleware"
	"legalscholer_app_go/models"
	"legalscholer_app_go/services/i18n"

	"github.com/labstack/echo/v4"
)

const defaultOGImagePath = "/static/images/og-image.png"

// Public pages and their routes. Pages missing here are not indexed.
var pagePaths = map[string]string{
	"landing": "/",
	"pricing": "/pricing",
	"login":   "/login",
	"signup":  "/signup",
}

// GetSEO returns the SEO configuration for a page in the request language
func GetSEO(c echo.Context, page string) *models.SEO {
	lang := middleware.GetLocale(c)
	seo := models.DefaultSEO(
		i18n.Translate(lang, "meta."+page+".title"),
		i18n.Translate(lang, "meta."+page+".description"),
	)
	seo.WithLocale(lang, alternateLanguages(lang)...)

	path, ok := pagePaths[page]
	if !ok {
		return seo.WithNoIndex()
	}

	base := baseURL(c)
	return seo.WithCanonical(base + path).WithOGImage(base + defaultOGImagePath)
}

func alternateLanguages(lang string) []string {
	var alts []string
	for _, l := range i18n.Languages {
		if l != lang {
			alts = append(alts, l)
		}
	}
	return alts
}

func baseURL(c echo.Context) string {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg.AppURL
	}
	return ""
}
