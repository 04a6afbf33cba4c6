package simulator

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned by Validate and New when a Config cannot drive a session.
var ErrInvalidConfig = errors.New("invalid simulator config")

// Units is a duration expressed in simulator time units.
// One unit is Config.TimeUnit of wall time.
type Units float64

// Of converts u to a wall duration for the given unit length.
func (u Units) Of(unit time.Duration) time.Duration {
	return time.Duration(float64(u) * float64(unit))
}

// Default timings, in units
const (
	DefaultTimeUnit = time.Second

	DefaultSubmitDelay           Units = 6
	DefaultVoiceDelay            Units = 5
	DefaultUploadProcessingDelay Units = 6
	DefaultUploadErrorDelay      Units = 3

	DefaultPlaceholderInterval      Units = 3
	DefaultLoadingTextInterval      Units = 2
	DefaultImageLoadingTextInterval Units = 1.5
	DefaultFeatureInterval          Units = 5

	DefaultBorderTick Units   = 0.02
	DefaultBorderStep float64 = 0.2
)

// DefaultVoiceTranscript replaces the search input when a voice capture completes.
const DefaultVoiceTranscript = "Voice input: Example query from voice..."

var (
	DefaultPlaceholders = []string{
		"Search for legal cases...",
		"Ask about contract law...",
		"Analyze a case brief...",
		"Find relevant statutes...",
	}

	DefaultSubtitles = []string{
		"Your legal research assistant",
		"Transforming legal research with AI",
		"Precision in legal analysis",
		"Intelligent case law discovery",
		"Simplifying complex legal concepts",
	}

	DefaultLoadingTexts = []string{
		"Processing your request...",
		"Analyzing legal databases...",
		"Cross-referencing case law...",
		"Generating insights...",
		"Compiling relevant precedents...",
		"Almost done...",
	}

	DefaultImageLoadingTexts = []string{
		"Uploading file...",
		"Extracting text from document...",
		"Identifying legal concepts...",
		"Analyzing document structure...",
		"Cross-referencing with case law...",
		"Finalizing analysis...",
	}

	DefaultFeatures = []Feature{
		{Icon: "zap", Title: "Lightning Fast", Description: "Get answers to complex legal questions in seconds"},
		{Icon: "book", Title: "Comprehensive Database", Description: "Access millions of cases, statutes, and legal documents"},
		{Icon: "scale", Title: "Case Analysis", Description: "Deep analysis of case law with relevant citations"},
		{Icon: "brain", Title: "AI-Powered Insights", Description: "Intelligent predictions and recommendations"},
	}

	DefaultSuggestions = []string{
		"Contract breach examples",
		"IP law basics",
		"Case analysis tools",
		"Recent Supreme Court rulings",
	}
)

// Feature is one entry of the landing page feature carousel.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Config carries every delay, interval and display list a Session uses.
type Config struct {
	TimeUnit time.Duration

	SubmitDelay           Units
	VoiceDelay            Units
	UploadProcessingDelay Units
	UploadErrorDelay      Units

	PlaceholderInterval      Units
	LoadingTextInterval      Units
	ImageLoadingTextInterval Units
	FeatureInterval          Units

	// BorderTick is how often the decorative sweep moves by BorderStep percent.
	BorderTick Units
	BorderStep float64

	VoiceTranscript string

	Placeholders      []string
	Subtitles         []string
	LoadingTexts      []string
	ImageLoadingTexts []string
	Features          []Feature
	Suggestions       []string
}

// DefaultConfig returns the landing page timings and copy.
func DefaultConfig() Config {
	return Config{
		TimeUnit:                 DefaultTimeUnit,
		SubmitDelay:              DefaultSubmitDelay,
		VoiceDelay:               DefaultVoiceDelay,
		UploadProcessingDelay:    DefaultUploadProcessingDelay,
		UploadErrorDelay:         DefaultUploadErrorDelay,
		PlaceholderInterval:      DefaultPlaceholderInterval,
		LoadingTextInterval:      DefaultLoadingTextInterval,
		ImageLoadingTextInterval: DefaultImageLoadingTextInterval,
		FeatureInterval:          DefaultFeatureInterval,
		BorderTick:               DefaultBorderTick,
		BorderStep:               DefaultBorderStep,
		VoiceTranscript:          DefaultVoiceTranscript,
		Placeholders:             append([]string(nil), DefaultPlaceholders...),
		Subtitles:                append([]string(nil), DefaultSubtitles...),
		LoadingTexts:             append([]string(nil), DefaultLoadingTexts...),
		ImageLoadingTexts:        append([]string(nil), DefaultImageLoadingTexts...),
		Features:                 append([]Feature(nil), DefaultFeatures...),
		Suggestions:              append([]string(nil), DefaultSuggestions...),
	}
}

// Validate reports the first field that would make a session misbehave.
func (c Config) Validate() error {
	if c.TimeUnit <= 0 {
		return fmt.Errorf("%w: time unit must be positive", ErrInvalidConfig)
	}

	durations := []struct {
		name  string
		value Units
	}{
		{"submit delay", c.SubmitDelay},
		{"voice delay", c.VoiceDelay},
		{"upload processing delay", c.UploadProcessingDelay},
		{"upload error delay", c.UploadErrorDelay},
		{"placeholder interval", c.PlaceholderInterval},
		{"loading text interval", c.LoadingTextInterval},
		{"image loading text interval", c.ImageLoadingTextInterval},
		{"feature interval", c.FeatureInterval},
		{"border tick", c.BorderTick},
	}
	for _, d := range durations {
		if d.value <= 0 || d.value.Of(c.TimeUnit) <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, d.name)
		}
	}

	if c.BorderStep <= 0 || c.BorderStep > borderMax || math.IsNaN(c.BorderStep) {
		return fmt.Errorf("%w: border step must be in (0, %v]", ErrInvalidConfig, borderMax)
	}

	lists := []struct {
		name string
		n    int
	}{
		{"placeholders", len(c.Placeholders)},
		{"subtitles", len(c.Subtitles)},
		{"loading texts", len(c.LoadingTexts)},
		{"image loading texts", len(c.ImageLoadingTexts)},
		{"features", len(c.Features)},
	}
	for _, l := range lists {
		if l.n == 0 {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, l.name)
		}
	}

	return nil
}

func (c Config) dur(u Units) time.Duration {
	return u.Of(c.TimeUnit)
}
