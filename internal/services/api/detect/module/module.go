// Package module wires detect into the API using modkit
package module

import (
	"context"

	"langdetect/internal/modkit"
	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/platform/cache"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/platform/logger"
	detecthttp "langdetect/internal/services/api/detect/http"
	"langdetect/internal/services/api/detect/repo"
	"langdetect/internal/services/api/detect/service"
	profiles "langdetect/internal/services/profiles/domain"
)

// Module implements the detect module
// it needs the profiles FactoryPort injected with modkit.WithPorts
type Module struct {
	built modkit.Built
	opts  Options
	svc   *service.Svc
	sink  *repo.Sink
	ports Ports
}

// New constructs the detect module
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("detect"), modkit.WithPrefix("/detect")}, mopts...)...)

	factories, ok := b.Ports.(profiles.FactoryPort)
	if !ok || factories == nil {
		return nil, perr.InvalidArgf("detect: module needs a profiles FactoryPort")
	}

	var tiers []cache.Cache
	if opts.CacheSize > 0 {
		lru, err := cache.NewLRU(opts.CacheSize)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "detect: cache size %d", opts.CacheSize)
		}
		tiers = append(tiers, lru)
	}
	if deps.Redis != nil {
		tiers = append(tiers, cache.NewRedis(deps.Redis, opts.RedisPrefix, opts.CacheTTL))
	}

	m := &Module{built: b, opts: opts}
	svcOpts := []service.Option{service.WithCache(cache.Tiered(tiers...)), service.WithMetrics(deps.Metrics)}
	if deps.CH != nil && opts.Sink {
		m.sink = repo.NewSink(deps.CH, opts.SinkOptions)
		svcOpts = append(svcOpts, service.WithSink(m.sink))
	}
	m.svc = service.New(factories, svcOpts...)
	m.ports = Ports{Detect: m.svc}
	return m, nil
}

// Start creates the detections table and runs the sink until ctx ends
// without clickhouse it does nothing
func (m *Module) Start(ctx context.Context) error {
	if m.sink == nil {
		return nil
	}
	if m.opts.SinkMigrate {
		if err := m.sink.Migrate(ctx); err != nil {
			return perr.WithOp(err, "detect.sink.migrate")
		}
	}
	go func() {
		if err := m.sink.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Named("detect").Error().Err(err).Msg("detections sink stopped")
		}
	}()
	return nil
}

// Service returns the underlying service
func (m *Module) Service() *service.Svc { return m.svc }

// Sink returns the detections sink, nil without clickhouse
func (m *Module) Sink() *repo.Sink { return m.sink }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		detecthttp.Register(rr, m.svc)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }
