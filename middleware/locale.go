package middleware

import (
	"net/http"
	"time"

	"legalscholer_app_go/config"
	"legalscholer_app_go/services/i18n"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// supportedTags must list i18n.Languages, default language first.
var supportedTags = []language.Tag{language.English, language.Spanish}

var languageMatcher = language.NewMatcher(supportedTags)

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = i18n.DefaultLang
				}
				setLanguageCookie(c, lang, cfg.IsProduction())
			} else if cookie, err := c.Cookie("lang"); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = matchAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set("locale", lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))

			return next(c)
		}
	}
}

// matchAcceptLanguage picks the best supported language for an
// Accept-Language header, honouring q weights.
func matchAcceptLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLang
	}
	tag, _ := language.MatchStrings(languageMatcher, header)
	base, _ := tag.Base()
	if lang := base.String(); i18n.IsSupported(lang) {
		return lang
	}
	return i18n.DefaultLang
}

// SetLanguageCookie sets the language cookie
func SetLanguageCookie(c echo.Context, lang string) {
	cfg, ok := c.Get("config").(*config.Config)
	setLanguageCookie(c, lang, ok && cfg.IsProduction())
}

func setLanguageCookie(c echo.Context, lang string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     "lang",
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour), // 1 year
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.DefaultLang
}
