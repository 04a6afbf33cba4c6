package main

import (
	"legalscholer_app_go/config"
	"legalscholer_app_go/handlers"
	"legalscholer_app_go/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// newServer builds the echo instance with every middleware and route.
func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e)

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.Tracing())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg))
	e.Use(middleware.CSRFContext())

	// Static files
	e.Static("/static", cfg.StaticDir)

	// Pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/pricing", handlers.PricingHandler)
	e.GET("/login", handlers.LoginHandler)
	e.POST("/login", handlers.LoginPostHandler, middleware.LoginRateLimiter.Middleware())
	e.GET("/signup", handlers.SignupHandler)
	e.POST("/signup", handlers.SignupPostHandler, middleware.SignupRateLimiter.Middleware())
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)

	// Landing page session fragments (HTMX)
	session := e.Group("/htmx/session/:id", middleware.SessionRateLimiter.Middleware())
	{
		session.GET("", handlers.SessionPollHandler)
		session.POST("/input", handlers.SessionInputHandler)
		session.POST("/focus", handlers.SessionFocusHandler)
		session.POST("/blur", handlers.SessionBlurHandler)
		session.POST("/submit", handlers.SessionSubmitHandler)
		session.POST("/voice", handlers.SessionVoiceHandler)
		session.POST("/upload", handlers.SessionUploadHandler, echomiddleware.BodyLimit("11M"))
		session.POST("/upload/close", handlers.SessionUploadCloseHandler)
		session.POST("/drag/enter", handlers.SessionDragEnterHandler)
		session.POST("/drag/leave", handlers.SessionDragLeaveHandler)
		session.POST("/suggestion", handlers.SessionSuggestionHandler)
		session.POST("/close", handlers.SessionCloseHandler)
	}

	e.RouteNotFound("/*", handlers.NotFoundHandler)

	return e
}
