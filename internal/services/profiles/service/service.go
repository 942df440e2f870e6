// Package service owns the active profile registry and its reloads
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/profile"
	"langdetect/internal/core/registry"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/platform/logger"
	"langdetect/internal/services/profiles/domain"
)

// Config controls how a loaded source becomes a detector factory
type Config struct {
	Detector   detector.Config
	PruneFloor float64

	// OnReload observes every reload attempt, e.g. metrics.Reloaded
	OnReload func(langs int, err error)
}

type active struct {
	factory  *detector.Factory
	loadedAt time.Time
}

// Svc holds the active factory; readers never block on a reload
type Svc struct {
	src domain.Source
	cfg Config
	now func() time.Time

	cur atomic.Pointer[active]
	mu  sync.Mutex
}

// New returns a service with nothing loaded yet; call Reload before serving
func New(src domain.Source, cfg Config) *Svc {
	return &Svc{src: src, cfg: cfg, now: time.Now}
}

// LoadRegistry reads src and builds an immutable registry from it
// a source with no profiles yields registry.ErrEmpty
func LoadRegistry(ctx context.Context, src domain.Source, opts ...registry.Option) (*registry.Registry, error) {
	ps, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, registry.ErrEmpty
	}
	return registry.FromProfiles(ps, opts...)
}

// Current implements domain.FactoryPort
func (s *Svc) Current() *detector.Factory {
	if a := s.cur.Load(); a != nil {
		return a.factory
	}
	return nil
}

// Source names the backing source
func (s *Svc) Source() string { return s.src.Name() }

// Reload rebuilds the registry from the source and swaps it in
// on failure the previous registry stays active
func (s *Svc) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := LoadRegistry(ctx, s.src, registry.WithPruneFloor(s.cfg.PruneFloor))
	if err == nil {
		err = s.swap(reg)
	}
	s.observe(err)
	log := logger.C(ctx)
	if err != nil {
		log.Error().Err(err).Str("source", s.src.Name()).Msg("profile reload failed, keeping previous registry")
		return err
	}
	f := s.Current()
	log.Info().Str("source", s.src.Name()).Int("languages", f.Registry().Len()).Int("ngrams", f.Registry().NGrams()).Msg("profiles loaded")
	return nil
}

func (s *Svc) swap(reg *registry.Registry) error {
	f, err := detector.NewFactory(reg, s.cfg.Detector)
	if err != nil {
		return err
	}
	s.cur.Store(&active{factory: f, loadedAt: s.now()})
	return nil
}

func (s *Svc) observe(err error) {
	if s.cfg.OnReload == nil {
		return
	}
	n := 0
	if f := s.Current(); f != nil {
		n = f.Registry().Len()
	}
	s.cfg.OnReload(n, err)
}

// List describes the active registry
func (s *Svc) List(context.Context) (domain.ListResp, error) {
	a := s.cur.Load()
	if a == nil {
		return domain.ListResp{}, registry.ErrEmpty
	}
	reg := a.factory.Registry()
	out := domain.ListResp{
		Source:    s.src.Name(),
		Languages: make([]domain.ProfileInfo, 0, reg.Len()),
		NGrams:    reg.NGrams(),
		LoadedAt:  a.loadedAt,
	}
	for _, l := range reg.Languages() {
		out.Languages = append(out.Languages, domain.ProfileInfo{Lang: l})
	}
	return out, nil
}

// Put stores p in a writable source and reloads
func (s *Svc) Put(ctx context.Context, p *profile.Profile) (domain.ReloadResp, error) {
	w, ok := s.src.(domain.Writer)
	if !ok {
		return domain.ReloadResp{}, perr.InvalidArgf("profiles: source %s is read only", s.src.Name())
	}
	if err := profile.CheckLang(p.Lang); err != nil {
		return domain.ReloadResp{}, err
	}
	if err := w.Upsert(ctx, p); err != nil {
		return domain.ReloadResp{}, err
	}
	if err := s.Reload(ctx); err != nil {
		return domain.ReloadResp{}, err
	}
	return s.summary(), nil
}

// Remove drops lang from the active registry, and from the source when it is writable
// removing the last language is refused with registry.ErrEmpty
func (s *Svc) Remove(ctx context.Context, lang string) (domain.ReloadResp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.cur.Load()
	if a == nil {
		return domain.ReloadResp{}, registry.ErrEmpty
	}
	reg, err := a.factory.Registry().Without(lang)
	if err != nil {
		return domain.ReloadResp{}, err
	}
	if w, ok := s.src.(domain.Writer); ok {
		if err := w.Delete(ctx, lang); err != nil {
			return domain.ReloadResp{}, err
		}
	}
	if err := s.swap(reg); err != nil {
		return domain.ReloadResp{}, err
	}
	s.observe(nil)
	logger.C(ctx).Info().Str("lang", lang).Msg("profile removed")
	return s.summary(), nil
}

func (s *Svc) summary() domain.ReloadResp {
	a := s.cur.Load()
	reg := a.factory.Registry()
	return domain.ReloadResp{Languages: reg.Len(), NGrams: reg.NGrams(), LoadedAt: a.loadedAt}
}

// ReloadNow reloads and reports the result, the http face of Reload
func (s *Svc) ReloadNow(ctx context.Context) (domain.ReloadResp, error) {
	if err := s.Reload(ctx); err != nil {
		return domain.ReloadResp{}, err
	}
	return s.summary(), nil
}
