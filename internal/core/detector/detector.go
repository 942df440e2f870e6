// Package detector runs one detection session over a shared registry
//
// A Detector accumulates raw text through Append. The first query after an
// append normalizes the whole buffer, extracts n-grams and scores them; the
// resulting vector is cached until the next Append or SetPrior. The registry
// is borrowed, never copied, so any number of detectors may share one.
// A single Detector is not safe for concurrent use.
package detector

import (
	"math"
	"strings"
	"unicode/utf8"

	"langdetect/internal/core/ngram"
	"langdetect/internal/core/normalize"
	"langdetect/internal/core/registry"
	"langdetect/internal/core/scoring"
	perr "langdetect/internal/platform/errors"
)

// State of a session
type State uint8

const (
	// Accumulating means the cached vector is stale or absent
	Accumulating State = iota
	// Scored means the cached vector matches the buffer
	Scored
)

func (s State) String() string {
	if s == Scored {
		return "scored"
	}
	return "accumulating"
}

var normalizer = normalize.New()

// Detector is one detection session
type Detector struct {
	reg   *registry.Registry
	cfg   Config
	buf   strings.Builder
	runes int
	prior []float64

	state State
	probs []float64
}

// New returns a session over reg; cfg is validated
// an empty or nil registry is reported by the first query
func New(reg *registry.Registry, cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{reg: reg, cfg: cfg}, nil
}

// Append adds text to the buffer and drops any cached result
// input past MaxTextLength runes is ignored
func (d *Detector) Append(text string) {
	d.state = Accumulating
	d.probs = nil

	room := d.cfg.MaxTextLength - d.runes
	if room <= 0 {
		return
	}
	if n := utf8.RuneCountInString(text); n <= room {
		d.buf.WriteString(text)
		d.runes += n
		return
	}
	for i := range text {
		if room == 0 {
			d.buf.WriteString(text[:i])
			break
		}
		room--
	}
	d.runes = d.cfg.MaxTextLength
}

// Text returns the accumulated raw text
func (d *Detector) Text() string { return d.buf.String() }

// State reports whether a cached result is available
func (d *Detector) State() State { return d.state }

// SetPrior overrides the uniform prior; languages missing from the registry are ignored
func (d *Detector) SetPrior(prior map[string]float64) error {
	if d.reg == nil || d.reg.Len() == 0 {
		return registry.ErrEmpty
	}
	p := make([]float64, d.reg.Len())
	sum := 0.0
	for lang, v := range prior {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return perr.WithField(perr.InvalidArgf("detector: prior for %q is %v", lang, v), lang)
		}
		i, ok := d.reg.Index(lang)
		if !ok {
			continue
		}
		p[i] = v
		sum += v
	}
	if sum == 0 {
		return perr.InvalidArgf("detector: prior has no positive weight for a known language")
	}
	d.prior = p
	d.state = Accumulating
	d.probs = nil
	return nil
}

// Detect returns the most probable language, or Unknown below MinConfidence
func (d *Detector) Detect() (string, error) {
	probs, err := d.score()
	if err != nil {
		return "", err
	}
	best, top := -1, 0.0
	for i, p := range probs {
		if p > top {
			best, top = i, p
		}
	}
	if best < 0 || top <= d.cfg.MinConfidence {
		return Unknown, nil
	}
	return d.reg.Lang(best), nil
}

// Probabilities returns the ranked distribution above DisplayThreshold
func (d *Detector) Probabilities() ([]Language, error) {
	probs, err := d.score()
	if err != nil {
		return nil, err
	}
	return rank(d.reg.Languages(), probs, d.cfg.DisplayThreshold), nil
}

// score runs the pipeline once per buffer state
func (d *Detector) score() ([]float64, error) {
	if d.state == Scored {
		return d.probs, nil
	}
	if d.reg == nil || d.reg.Len() == 0 {
		return nil, registry.ErrEmpty
	}
	grams := ngram.Texts(ngram.Extract(normalizer.Normalize(d.buf.String())))
	probs, err := scoring.Score(grams, d.reg, d.prior, scoring.NewSource(d.cfg.Seed), d.cfg.Config)
	if err != nil {
		return nil, err
	}
	d.probs = probs
	d.state = Scored
	return probs, nil
}
