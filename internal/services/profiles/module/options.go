package module

import (
	"time"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/scoring"
	"langdetect/internal/platform/config"
)

// Source kinds
const (
	SourceDir  = "dir"
	SourcePG   = "pg"
	SourceBolt = "bolt"
)

// Options selects the profile source and the detector defaults
type Options struct {
	Source     string
	Dir        string
	Watch      bool
	Debounce   time.Duration
	PruneFloor float64
	Admin      bool
	Migrate    bool

	Detector detector.Config
}

// FromConfig reads PROFILES_* and DETECT_* settings
func FromConfig(cfg config.Conf) Options {
	p := cfg.Prefix("PROFILES_")
	d := cfg.Prefix("DETECT_")

	dc := detector.DefaultConfig()
	dc.Seed = d.MaySeed("SEED")
	dc.Trials = d.MayInt("TRIALS", scoring.DefaultTrials)
	dc.IterationLimit = d.MayInt("ITERATION_LIMIT", scoring.DefaultIterationLimit)
	dc.Alpha = d.MayFloat64("ALPHA", scoring.DefaultAlpha)
	dc.AlphaWidth = d.MayFloat64("ALPHA_WIDTH", scoring.DefaultAlphaWidth)
	dc.ConvergenceThreshold = d.MayFloat64("CONVERGENCE_THRESHOLD", scoring.DefaultConvergenceThreshold)
	dc.MinConfidence = d.MayFloat64("MIN_CONFIDENCE", detector.DefaultMinConfidence)
	dc.DisplayThreshold = d.MayFloat64("DISPLAY_THRESHOLD", detector.DefaultDisplayThreshold)
	dc.MaxTextLength = d.MayInt("MAX_TEXT_LENGTH", detector.DefaultMaxTextLength)

	return Options{
		Source:     p.MayEnum("SOURCE", SourceDir, SourceDir, SourcePG, SourceBolt),
		Dir:        p.MayString("DIR", "profiles"),
		Watch:      p.MayBool("WATCH", false),
		Debounce:   p.MayDuration("DEBOUNCE", 250*time.Millisecond),
		PruneFloor: p.MayFloat64("PRUNE_FLOOR", 0),
		Admin:      p.MayBool("ADMIN", false),
		Migrate:    p.MayBool("MIGRATE", true),
		Detector:   dc,
	}
}
