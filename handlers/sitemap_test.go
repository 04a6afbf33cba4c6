package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, GetSitemapHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	var set struct {
		URLs []SitemapURL `xml:"url"`
	}
	body := strings.TrimPrefix(rec.Body.String(), xml.Header)
	require.NoError(t, xml.Unmarshal([]byte(body), &set))

	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, []string{
		testAppURL + "/",
		testAppURL + "/pricing",
		testAppURL + "/login",
		testAppURL + "/signup",
	}, locs)
}

func TestRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, RobotsHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /htmx/")
	assert.Contains(t, rec.Body.String(), "Sitemap: "+testAppURL+"/sitemap.xml")
}
