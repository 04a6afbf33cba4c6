package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"legalscholer_app_go/config"
	"legalscholer_app_go/services"
	"legalscholer_app_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	csrfTokenAttr = regexp.MustCompile(`data-csrf-token="([^"]+)"`)
	sessionIDAttr = regexp.MustCompile(`data-session-id="([^"]+)"`)
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	require.NoError(t, i18n.Load())
	cfg := &config.Config{
		Environment:       "test",
		AppURL:            "https://legalscholer.test",
		AllowedOrigins:    []string{"*"},
		StaticDir:         "../../static",
		SimulatorTimeUnit: time.Second,
		SessionTTL:        time.Minute,
	}
	_, err := services.InitSessions(cfg)
	require.NoError(t, err)
	return newServer(cfg)
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLandingSessionRoundTrip(t *testing.T) {
	e := testServer(t)

	page := do(e, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Header().Get("Content-Security-Policy"), "script-src 'self' 'nonce-")

	token := csrfTokenAttr.FindStringSubmatch(page.Body.String())
	require.Len(t, token, 2)
	id := sessionIDAttr.FindStringSubmatch(page.Body.String())
	require.Len(t, id, 2)

	post := func(action string, form url.Values, withToken bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/htmx/session/"+id[1]+"/"+action, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set("HX-Request", "true")
		for _, cookie := range page.Result().Cookies() {
			req.AddCookie(cookie)
		}
		if withToken {
			req.Header.Set("X-CSRF-Token", token[1])
		}
		return do(e, req)
	}

	t.Run("Gesture with token", func(t *testing.T) {
		rec := post("input", url.Values{"q": {"breach"}}, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-input-text="breach"`)
	})

	t.Run("Gesture without token is rejected", func(t *testing.T) {
		rec := post("focus", nil, false)
		assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), "alert-error")
	})

	t.Run("Poll", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/htmx/session/"+id[1], nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-input-text="breach"`)
	})

	t.Run("Close with form token", func(t *testing.T) {
		rec := post("close", url.Values{"_csrf": {token[1]}}, false)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		gone := do(e, httptest.NewRequest(http.MethodGet, "/htmx/session/"+id[1], nil))
		assert.Equal(t, http.StatusGone, gone.Code)
	})
}

func TestLanguageSwitch(t *testing.T) {
	e := testServer(t)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/pricing?lang=es", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<html lang="es">`)

	var langCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "lang" {
			langCookie = cookie
		}
	}
	require.NotNil(t, langCookie)
	assert.Equal(t, "es", langCookie.Value)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.5")
	rec = do(e, req)
	assert.Contains(t, rec.Body.String(), `<html lang="es">`)
}

func TestPublicRoutes(t *testing.T) {
	e := testServer(t)

	tests := []struct {
		path     string
		code     int
		contains string
	}{
		{"/pricing", http.StatusOK, "plan-grid"},
		{"/login", http.StatusOK, `id="auth-form"`},
		{"/signup", http.StatusOK, `name="confirm_password"`},
		{"/sitemap.xml", http.StatusOK, "<urlset"},
		{"/robots.txt", http.StatusOK, "Disallow: /htmx/"},
		{"/static/css/style.css", http.StatusOK, ".search-shell"},
		{"/no/such/page", http.StatusNotFound, "not-found-code"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(e, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
