package handlers

import (
	"net/http"
	"strings"

	"legalscholer_app_go/middleware"
	"legalscholer_app_go/services"
	"legalscholer_app_go/templates/components"
	"legalscholer_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LoginHandler renders the login page
func LoginHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Auth(authViewModel(c, pages.AuthLogin)))
}

// LoginPostHandler validates the login form. No backend is connected, so a
// valid form only yields a notice and no credential is checked.
func LoginPostHandler(c echo.Context) error {
	var form services.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	form.Email = strings.TrimSpace(form.Email)

	vm := authViewModel(c, pages.AuthLogin)
	vm.Values = map[string]string{"email": form.Email}
	vm.Errors = services.ValidateLogin(middleware.GetLocale(c), form)
	vm.Submitted = len(vm.Errors) == 0
	if vm.Submitted {
		c.Logger().Infof("Login form accepted for %s (backend not connected)", c.RealIP())
	}
	return renderAuth(c, vm)
}

// SignupHandler renders the signup page
func SignupHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Auth(authViewModel(c, pages.AuthSignup)))
}

// SignupPostHandler validates the signup form with the same mocked outcome as login
func SignupPostHandler(c echo.Context) error {
	var form services.SignupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	vm := authViewModel(c, pages.AuthSignup)
	vm.Values = map[string]string{"name": form.Name, "email": form.Email}
	vm.Errors = services.ValidateSignup(middleware.GetLocale(c), form)
	vm.Submitted = len(vm.Errors) == 0
	if vm.Submitted {
		c.Logger().Infof("Signup form accepted for %s (backend not connected)", c.RealIP())
	}
	return renderAuth(c, vm)
}

func authViewModel(c echo.Context, mode pages.AuthMode) pages.AuthViewModel {
	minLength := services.MinLoginPasswordLength
	if mode == pages.AuthSignup {
		minLength = services.MinPasswordLength
	}
	return pages.AuthViewModel{
		Meta:              components.PageMeta{SEO: GetSEO(c, string(mode)), Path: "/" + string(mode)},
		Mode:              mode,
		Values:            map[string]string{},
		Errors:            map[string]string{},
		MinPasswordLength: minLength,
		EmailPattern:      services.EmailPattern,
	}
}

// renderAuth answers htmx posts with the form card only. Full page posts
// with errors get 422 so the status reflects the rejected input.
func renderAuth(c echo.Context, vm pages.AuthViewModel) error {
	if isHTMX(c) {
		return render(c, http.StatusOK, pages.AuthForm(vm))
	}
	status := http.StatusOK
	if len(vm.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	return render(c, status, pages.Auth(vm))
}
