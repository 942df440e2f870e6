// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"
	"time"

	"langdetect/internal/core/version"
	"langdetect/internal/modkit"
	"langdetect/internal/modkit/httpkit"
	str "langdetect/internal/platform/strings"
	metahttp "langdetect/internal/services/api/meta/http"
	"langdetect/internal/services/profiles/domain"
)

// Module implements the modkit.Module interface
// the profiles FactoryPort is optional and injected with modkit.WithPorts
type Module struct {
	built     modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{built: b, startedAt: time.Now()}
	m.deps = metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   m.startedAt,
	}
	if f, ok := b.Ports.(domain.FactoryPort); ok {
		m.deps.Factories = f
	}
	// typed nils would read as present backends
	if deps.PG != nil {
		m.deps.PG = deps.PG
	}
	if deps.CH != nil {
		m.deps.CH = deps.CH
	}
	if deps.Redis != nil {
		rdb := deps.Redis
		m.deps.Redis = metahttp.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
