package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultTimeUnit is the wall length of one simulator time unit
	DefaultTimeUnit = time.Second
	// DefaultSessionTTL is how long an abandoned landing page session is kept
	DefaultSessionTTL = 30 * time.Minute
)

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	StaticDir      string
	// Interaction simulator
	SimulatorTimeUnit time.Duration
	SessionTTL        time.Duration
	// OpenTelemetry (tracing is disabled when the endpoint is empty)
	OTelEndpoint    string
	OTelServiceName string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		AppURL:            strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		StaticDir:         getEnv("STATIC_DIR", "static"),
		SimulatorTimeUnit: getEnvDuration("SIMULATOR_TIME_UNIT", DefaultTimeUnit),
		SessionTTL:        getEnvDuration("SESSION_TTL", DefaultSessionTTL),
		OTelEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTelServiceName:   getEnv("OTEL_SERVICE_NAME", "legalscholer"),
	}
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvDuration parses Go duration syntax ("1s", "250ms"). Invalid or
// non-positive values fall back to the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
