package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"legalscholer_app_go/config"
	"legalscholer_app_go/services"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testAppURL = "https://legalscholer.test"

func testConfig() *config.Config {
	return &config.Config{
		Environment:       "test",
		AppURL:            testAppURL,
		SimulatorTimeUnit: time.Second,
		SessionTTL:        time.Minute,
	}
}

// setupSessions loads the catalogs and installs a fresh session registry.
func setupSessions(t *testing.T) *simulator.Registry {
	t.Helper()
	require.NoError(t, i18n.Load())
	registry, err := services.InitSessions(testConfig())
	require.NoError(t, err)
	return registry
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// setupSessionEcho prepares a context for a session route with the :id param bound.
func setupSessionEcho(method, path, id string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(method, path, body)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}
