package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the public pages
func GetSitemapHandler(c echo.Context) error {
	base := baseURL(c)

	urls := []SitemapURL{
		{Loc: base + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: base + "/pricing", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: base + "/login", ChangeFreq: "yearly", Priority: 0.5},
		{Loc: base + "/signup", ChangeFreq: "yearly", Priority: 0.6},
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler allows crawling of the pages and points at the sitemap
func RobotsHandler(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /htmx/\n")
	b.WriteString("\nSitemap: " + baseURL(c) + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}
