package services

import (
	"fmt"
	"time"

	"legalscholer_app_go/models"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"
)

// SimulatorConfig builds the landing page simulator configuration with the
// display lists of lang. Lists missing from the catalog keep the defaults.
func SimulatorConfig(lang string, timeUnit time.Duration) simulator.Config {
	cfg := simulator.DefaultConfig()
	if timeUnit > 0 {
		cfg.TimeUnit = timeUnit
	}

	lists := []struct {
		key    string
		target *[]string
	}{
		{"landing.placeholders", &cfg.Placeholders},
		{"landing.subtitles", &cfg.Subtitles},
		{"landing.loading_texts", &cfg.LoadingTexts},
		{"landing.image_loading_texts", &cfg.ImageLoadingTexts},
		{"landing.suggestions", &cfg.Suggestions},
	}
	for _, l := range lists {
		if items := i18n.List(lang, l.key); len(items) > 0 {
			*l.target = items
		}
	}

	if n := i18n.Count(lang, "landing.features"); n > 0 {
		features := make([]simulator.Feature, 0, n)
		for i := 0; i < n; i++ {
			prefix := fmt.Sprintf("landing.features.%d.", i)
			features = append(features, simulator.Feature{
				Icon:        i18n.Translate(lang, prefix+"icon"),
				Title:       i18n.Translate(lang, prefix+"title"),
				Description: i18n.Translate(lang, prefix+"description"),
			})
		}
		cfg.Features = features
	}

	cfg.VoiceTranscript = translateOr(lang, "landing.voice_transcript", cfg.VoiceTranscript)
	return cfg
}

// PricingPlans returns the pricing page cards in display order.
func PricingPlans(lang string) []models.Plan {
	n := i18n.Count(lang, "pricing.plans")
	currency := i18n.Translate(lang, "pricing.currency")

	plans := make([]models.Plan, 0, n)
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("pricing.plans.%d.", i)
		plans = append(plans, models.Plan{
			Name:        i18n.Translate(lang, prefix+"name"),
			Description: i18n.Translate(lang, prefix+"description"),
			Price:       translateOr(lang, prefix+"price", ""),
			Currency:    currency,
			Popular:     translateOr(lang, prefix+"popular", "") == "true",
			Features:    i18n.List(lang, prefix+"features"),
		})
	}
	return plans
}

// Guarantees returns the security note items shown under the plans.
func Guarantees(lang string) []models.Guarantee {
	n := i18n.Count(lang, "pricing.guarantees")

	out := make([]models.Guarantee, 0, n)
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("pricing.guarantees.%d.", i)
		out = append(out, models.Guarantee{
			Icon:  i18n.Translate(lang, prefix+"icon"),
			Title: i18n.Translate(lang, prefix+"title"),
			Body:  i18n.Translate(lang, prefix+"body"),
		})
	}
	return out
}

// translateOr returns fallback when key has no translation.
func translateOr(lang, key, fallback string) string {
	if val := i18n.Translate(lang, key); val != key {
		return val
	}
	return fallback
}
