package handlers

import (
	"net/http"

	"legalscholer_app_go/middleware"
	"legalscholer_app_go/services"
	"legalscholer_app_go/templates/components"
	"legalscholer_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// PricingHandler renders the plan cards
func PricingHandler(c echo.Context) error {
	lang := middleware.GetLocale(c)
	vm := pages.PricingViewModel{
		Meta:       components.PageMeta{SEO: GetSEO(c, "pricing"), Path: "/pricing"},
		Plans:      services.PricingPlans(lang),
		Guarantees: services.Guarantees(lang),
	}
	return render(c, http.StatusOK, pages.Pricing(vm))
}
