package handlers

import (
	"net/http"

	"legalscholer_app_go/middleware"
	"legalscholer_app_go/services"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/templates/components"
	"legalscholer_app_go/templates/pages"
	"legalscholer_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// LandingHandler mounts a new interaction session and renders the landing page around it
func LandingHandler(c echo.Context) error {
	lang := middleware.GetLocale(c)

	mounted, err := services.Sessions.Create(lang)
	if err != nil {
		c.Logger().Errorf("Failed to mount landing session: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load page")
	}

	// every view owns its own session, so the page must not be reused from cache
	noStore(c)

	vm := pages.LandingViewModel{
		Meta:    components.PageMeta{SEO: GetSEO(c, "landing"), Path: "/"},
		Session: partials.SessionProps{ID: mounted.ID, View: mounted.View},
		Firms:   i18n.List(lang, "landing.firms"),
	}
	return render(c, http.StatusOK, pages.Landing(vm))
}
