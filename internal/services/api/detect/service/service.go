// Package service runs detections against the active registry
package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"maps"
	"math"
	"slices"
	"time"
	"unicode/utf8"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/registry"
	"langdetect/internal/platform/cache"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/platform/logger"
	"langdetect/internal/platform/metrics"
	pnet "langdetect/internal/platform/net"
	"langdetect/internal/services/api/detect/domain"
	profiles "langdetect/internal/services/profiles/domain"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Outcomes recorded per detection
const (
	OutcomeDetected   = "detected"
	OutcomeUnknown    = "unknown"
	OutcomeNoFeatures = "no_features"
	OutcomeEmpty      = "empty_registry"
	OutcomeError      = "error"
)

// Service defines the detect service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service over the profiles factory port
// seeded requests are deterministic and go through the cache
type Svc struct {
	factories profiles.FactoryPort
	cache     cache.Cache
	sink      domain.EventSink
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option customizes Svc
type Option func(*Svc)

// WithCache stores seeded results in c
func WithCache(c cache.Cache) Option { return func(s *Svc) { s.cache = c } }

// WithSink records every detection to sink
func WithSink(sink domain.EventSink) Option { return func(s *Svc) { s.sink = sink } }

// WithMetrics counts detections and cache lookups
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.metrics = m } }

// New constructs a detect service
func New(factories profiles.FactoryPort, opts ...Option) *Svc {
	if factories == nil {
		panic("detect.Service requires a non nil FactoryPort")
	}
	s := &Svc{factories: factories, cache: cache.Nop{}, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	if s.cache == nil {
		s.cache = cache.Nop{}
	}
	return s
}

// Detect names the most probable language of in.Text
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectResp, error) {
	return s.run(ctx, in)
}

// Probabilities returns the ranked distribution for in.Text
func (s *Svc) Probabilities(ctx context.Context, in domain.DetectInput) (domain.ProbabilitiesResp, error) {
	out, err := s.run(ctx, in)
	if err != nil {
		return domain.ProbabilitiesResp{}, err
	}
	return domain.ProbabilitiesResp{Probabilities: out.Probabilities}, nil
}

// Languages lists the active registry
func (s *Svc) Languages(context.Context) (domain.LanguagesResp, error) {
	f := s.factories.Current()
	if f == nil {
		return domain.LanguagesResp{}, registry.ErrEmpty
	}
	langs := f.Languages()
	return domain.LanguagesResp{Languages: langs, Count: len(langs)}, nil
}

func (s *Svc) run(ctx context.Context, in domain.DetectInput) (out domain.DetectResp, err error) {
	start := s.now()
	cached := false
	defer func() { s.observe(ctx, in, out, err, cached, start) }()

	f := s.factories.Current()
	if f == nil {
		return out, registry.ErrEmpty
	}

	var key string
	if in.Seed != nil {
		key = cacheKey(f, in, *in.Seed)
		if b, ok := s.cache.Get(ctx, key); ok {
			if jerr := json.Unmarshal(b, &out); jerr == nil {
				cached = true
				s.cacheHit(true)
				return out, nil
			}
			logger.C(ctx).Warn().Str("key", key).Msg("undecodable cached detection")
		}
		s.cacheHit(false)
	}

	d := f.Create()
	if in.Seed != nil {
		d = f.CreateSeeded(*in.Seed)
	}
	if len(in.Prior) > 0 {
		if err := d.SetPrior(in.Prior); err != nil {
			return domain.DetectResp{}, err
		}
	}
	d.Append(in.Text)
	probs, err := d.Probabilities()
	if err != nil {
		return domain.DetectResp{}, err
	}
	lang, err := d.Detect()
	if err != nil {
		return domain.DetectResp{}, err
	}
	if probs == nil {
		probs = []detector.Language{}
	}
	out = domain.DetectResp{Lang: lang, Probabilities: probs}

	if key != "" {
		if b, jerr := json.Marshal(out); jerr == nil {
			s.cache.Set(ctx, key, b)
		}
	}
	return out, nil
}

func (s *Svc) cacheHit(hit bool) {
	if s.metrics != nil {
		s.metrics.CacheHit(hit)
	}
}

func (s *Svc) observe(ctx context.Context, in domain.DetectInput, out domain.DetectResp, err error, cached bool, start time.Time) {
	outcome := outcomeOf(out.Lang, err)
	if s.metrics != nil {
		s.metrics.ObserveDetection(outcome, s.now().Sub(start))
	}
	if s.sink == nil {
		return
	}
	ev := domain.Event{
		ID:        uuid.New(),
		At:        start,
		RequestID: pnet.RequestID(ctx),
		Lang:      out.Lang,
		Runes:     utf8.RuneCountInString(in.Text),
		Seeded:    in.Seed != nil,
		Cached:    cached,
		Outcome:   outcome,
	}
	for _, l := range out.Probabilities {
		if l.Lang == out.Lang {
			ev.Prob = l.Prob
			break
		}
	}
	s.sink.Record(ev)
}

func outcomeOf(lang string, err error) string {
	switch {
	case err == nil && lang == detector.Unknown:
		return OutcomeUnknown
	case err == nil:
		return OutcomeDetected
	case perr.IsCode(err, perr.ErrorCodeNoFeatures):
		return OutcomeNoFeatures
	case perr.IsCode(err, perr.ErrorCodeEmptyRegistry):
		return OutcomeEmpty
	}
	return OutcomeError
}

// cacheKey binds a result to the registry contents, the session options, the prior, the seed and the text
func cacheKey(f *detector.Factory, in domain.DetectInput, seed uint64) string {
	h := sha256.New()
	h.Write([]byte(f.Registry().Fingerprint()))

	var n [8]byte
	if cfg, err := json.Marshal(f.Config()); err == nil {
		h.Write(cfg)
	}
	for _, lang := range slices.Sorted(maps.Keys(in.Prior)) {
		h.Write([]byte(lang))
		binary.BigEndian.PutUint64(n[:], math.Float64bits(in.Prior[lang]))
		h.Write(n[:])
	}
	binary.BigEndian.PutUint64(n[:], seed)
	h.Write(n[:])
	h.Write([]byte(in.Text))
	return hex.EncodeToString(h.Sum(nil))
}
