// Package module wires the profile registry into the API
package module

import (
	"context"

	"langdetect/internal/modkit"
	"langdetect/internal/modkit/httpkit"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/platform/logger"
	"langdetect/internal/services/profiles/domain"
	profileshttp "langdetect/internal/services/profiles/http"
	"langdetect/internal/services/profiles/repo"
	"langdetect/internal/services/profiles/service"
)

// Module owns the profile source, the active registry and its watcher
type Module struct {
	built modkit.Built
	opts  Options
	src   domain.Source
	svc   *service.Svc
	ports Ports
}

// NewSource builds the source opts.Source names from deps
func NewSource(deps modkit.Deps, opts Options) (domain.Source, error) {
	switch opts.Source {
	case SourceDir, "":
		return repo.NewDir(opts.Dir), nil
	case SourcePG:
		if deps.PG == nil {
			return nil, perr.Unavailablef("profiles: source pg needs PG_ENABLED")
		}
		return repo.NewPG(deps.PG), nil
	case SourceBolt:
		if deps.Bolt == nil {
			return nil, perr.Unavailablef("profiles: source bolt needs BOLT_ENABLED")
		}
		return repo.NewBolt(deps.Bolt), nil
	}
	return nil, perr.InvalidArgf("profiles: unknown source %q", opts.Source)
}

// New constructs the profiles module; nothing is loaded until Start
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) (*Module, error) {
	src, err := NewSource(deps, opts)
	if err != nil {
		return nil, err
	}
	cfg := service.Config{Detector: opts.Detector, PruneFloor: opts.PruneFloor}
	if deps.Metrics != nil {
		cfg.OnReload = deps.Metrics.Reloaded
	}
	svc := service.New(src, cfg)

	m := &Module{
		built: modkit.Build(append([]modkit.Option{
			modkit.WithName("profiles"),
			modkit.WithPrefix("/profiles"),
		}, mopts...)...),
		opts: opts,
		src:  src,
		svc:  svc,
	}
	m.ports = Ports{Factories: svc, Reloader: svc}
	return m, nil
}

// Start migrates the pg table when asked, performs the first load and starts the
// directory watcher; the watcher stops with ctx
func (m *Module) Start(ctx context.Context) error {
	if pg, ok := m.src.(*repo.PG); ok && m.opts.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
	}
	if err := m.svc.Reload(ctx); err != nil {
		return err
	}
	if m.opts.Watch && m.opts.Source == SourceDir {
		go func() {
			if err := m.svc.Watch(ctx, m.opts.Dir, m.opts.Debounce); err != nil && ctx.Err() == nil {
				logger.Named("profiles").Error().Err(err).Msg("profile watcher stopped")
			}
		}()
	}
	return nil
}

// Service returns the underlying service
func (m *Module) Service() *service.Svc { return m.svc }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		profileshttp.Register(rr, m.svc, m.opts.Admin)
	})
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }
