package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "APP_URL", "SIMULATOR_TIME_UNIT", "SESSION_TTL", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.AppURL)
	assert.Equal(t, DefaultTimeUnit, cfg.SimulatorTimeUnit)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Empty(t, cfg.OTelEndpoint)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("APP_URL", "https://legalscholer.example/")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SIMULATOR_TIME_UNIT", "250ms")
	t.Setenv("SESSION_TTL", "5m")

	cfg := Load()
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://legalscholer.example", cfg.AppURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatorTimeUnit)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"Empty", "", time.Second},
		{"Valid", "2s", 2 * time.Second},
		{"Garbage", "soon", time.Second},
		{"Negative", "-1s", time.Second},
		{"Zero", "0s", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvDuration("TEST_DURATION", time.Second))
		})
	}
}
