package handlers

import (
	"html"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// isHTMX reports whether the request was issued by htmx
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// render writes component as an HTML response with status
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// htmxError returns the inline error snippet htmx requests expect
func htmxError(c echo.Context, status int, message string) error {
	return c.HTML(status, `<div class="alert alert-error" role="alert"><span>`+html.EscapeString(message)+`</span></div>`)
}

// noStore marks a response as private to one page view
func noStore(c echo.Context) {
	c.Response().Header().Set("Cache-Control", "no-store")
}

