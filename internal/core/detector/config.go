package detector

import (
	"langdetect/internal/core/scoring"
	"langdetect/internal/platform/validate"
)

// Defaults of the query surface
const (
	DefaultMinConfidence    = 0.1
	DefaultDisplayThreshold = 0.1
	DefaultMaxTextLength    = 10000
)

// Config is the full option set of a detection session
type Config struct {
	scoring.Config

	// Seed fixes the random stream; nil draws from process entropy
	Seed *uint64 `json:"seed,omitempty"`

	// MinConfidence is the leading probability Detect needs to name a language
	MinConfidence float64 `json:"min_confidence_threshold" validate:"gte=0,lte=1"`

	// DisplayThreshold hides Probabilities entries at or below it
	DisplayThreshold float64 `json:"display_threshold" validate:"gte=0,lte=1"`

	// MaxTextLength caps the accumulated text, in runes
	MaxTextLength int `json:"max_text_length" validate:"min=1"`
}

// DefaultConfig returns the stock options without a seed
func DefaultConfig() Config {
	return Config{
		Config:           scoring.DefaultConfig(),
		MinConfidence:    DefaultMinConfidence,
		DisplayThreshold: DefaultDisplayThreshold,
		MaxTextLength:    DefaultMaxTextLength,
	}
}

// WithSeed returns a copy of c pinned to seed
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}

// Validate checks option ranges
func (c Config) Validate() error {
	return validate.Struct(c)
}
