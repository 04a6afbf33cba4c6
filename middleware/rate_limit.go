package middleware

import (
	"html"
	"net/http"
	"strconv"
	"sync"
	"time"

	"legalscholer_app_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// MessageKey, when set, translates the message into the request locale
	MessageKey string
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed window limiter for one group of routes
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		now:    time.Now,
	}

	go rl.cleanup()

	return rl
}

// allow counts one request for key and reports whether it fits the window.
// When it does not, it also returns the time until the window resets.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{
			count:     1,
			expiresAt: now.Add(rl.config.Window),
		}
		return true, 0
	}

	if entry.count >= rl.config.Requests {
		return false, entry.expiresAt.Sub(now)
	}
	entry.count++
	return true, 0
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := rl.allow(rl.config.KeyFunc(c))
			if ok {
				return next(c)
			}

			secs := int(retryAfter.Seconds())
			if secs < 1 {
				secs = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(secs))

			msg := rl.message(c)
			if c.Request().Header.Get("HX-Request") == "true" {
				return c.HTML(http.StatusTooManyRequests, `<div class="alert alert-error" role="alert"><span>`+html.EscapeString(msg)+`</span></div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, msg)
		}
	}
}

func (rl *RateLimiter) message(c echo.Context) string {
	if rl.config.MessageKey == "" {
		return rl.config.Message
	}
	if msg := i18n.Translate(GetLocale(c), rl.config.MessageKey); msg != rl.config.MessageKey {
		return msg
	}
	return rl.config.Message
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		rl.sweep()
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for key, entry := range rl.store {
		if now.After(entry.expiresAt) {
			delete(rl.store, key)
		}
	}
}

// Pre-configured rate limiters

// LoginRateLimiter limits login attempts to 5 per minute per IP
var LoginRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests:   5,
	Window:     1 * time.Minute,
	Message:    "Too many login attempts. Please wait a minute before trying again.",
	MessageKey: "errors.too_many_requests",
})

// SignupRateLimiter limits sign up attempts to 5 per minute per IP
var SignupRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests:   5,
	Window:     1 * time.Minute,
	Message:    "Too many sign up attempts. Please wait before trying again.",
	MessageKey: "errors.too_many_requests",
})

// SessionRateLimiter limits landing page session traffic per IP. A single tab
// polls four times a second, so this leaves room for a few tabs plus gestures.
var SessionRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests:   1200,
	Window:     1 * time.Minute,
	Message:    "Rate limit exceeded. Please slow down your requests.",
	MessageKey: "errors.too_many_requests",
})
