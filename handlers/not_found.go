package handlers

import (
	"errors"
	"net/http"

	"legalscholer_app_go/templates/components"
	"legalscholer_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// NotFoundHandler renders the 404 page for any unknown route
func NotFoundHandler(c echo.Context) error {
	meta := components.PageMeta{SEO: GetSEO(c, "not_found"), Path: c.Request().URL.Path}
	return render(c, http.StatusNotFound, pages.NotFound(meta))
}

// HTTPErrorHandler renders the 404 page for page requests, the inline error
// snippet for htmx requests, and falls back to echo's JSON errors otherwise.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		var renderErr error
		switch {
		case isHTMX(c):
			renderErr = htmxError(c, code, message)
		case code == http.StatusNotFound && c.Request().Method == http.MethodGet:
			renderErr = NotFoundHandler(c)
		default:
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if renderErr != nil {
			c.Logger().Error(renderErr)
		}
	}
}
