package services

import (
	"testing"
	"time"

	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorConfig(t *testing.T) {
	require.NoError(t, i18n.Load())

	cfg := SimulatorConfig("en", 10*time.Millisecond)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Millisecond, cfg.TimeUnit)
	assert.Equal(t, simulator.DefaultPlaceholders, cfg.Placeholders)
	assert.Equal(t, simulator.DefaultSubtitles, cfg.Subtitles)
	assert.Equal(t, simulator.DefaultLoadingTexts, cfg.LoadingTexts)
	assert.Equal(t, simulator.DefaultImageLoadingTexts, cfg.ImageLoadingTexts)
	assert.Equal(t, simulator.DefaultSuggestions, cfg.Suggestions)
	assert.Equal(t, simulator.DefaultFeatures, cfg.Features)
	assert.Equal(t, simulator.DefaultVoiceTranscript, cfg.VoiceTranscript)
}

func TestSimulatorConfigSpanish(t *testing.T) {
	require.NoError(t, i18n.Load())

	en := SimulatorConfig("en", 0)
	es := SimulatorConfig("es", 0)
	require.NoError(t, es.Validate())
	assert.Equal(t, simulator.DefaultTimeUnit, es.TimeUnit)
	assert.Len(t, es.Placeholders, len(en.Placeholders))
	assert.NotEqual(t, en.Placeholders, es.Placeholders)
	assert.Len(t, es.Features, len(en.Features))
	assert.Equal(t, en.Features[0].Icon, es.Features[0].Icon)
}

func TestPricingPlans(t *testing.T) {
	require.NoError(t, i18n.Load())

	plans := PricingPlans("en")
	require.Len(t, plans, 4)

	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, "GHC 49", plans[0].FormatPrice())
	assert.NotEmpty(t, plans[0].Features)

	popular := 0
	for _, p := range plans {
		if p.Popular {
			popular++
			assert.Equal(t, "Professional", p.Name)
		}
	}
	assert.Equal(t, 1, popular)

	assert.True(t, plans[3].IsCustom())
}

func TestGuarantees(t *testing.T) {
	require.NoError(t, i18n.Load())

	g := Guarantees("es")
	require.NotEmpty(t, g)
	for _, item := range g {
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Body)
	}
}
