// Package api provides the HTTP API for the application
package api

import (
	"context"

	"langdetect/internal/modkit"
	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/modkit/module"
	"langdetect/internal/modkit/swaggerkit"
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/metrics"
	phttp "langdetect/internal/platform/net/http"
	"langdetect/internal/platform/store"
	detectmod "langdetect/internal/services/api/detect/module"
	metamod "langdetect/internal/services/api/meta/module"
	profilesmod "langdetect/internal/services/profiles/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
}

// API owns the modules behind the HTTP surface
type API struct {
	Profiles *profilesmod.Module
	Detect   *detectmod.Module
	Meta     *metamod.Module
}

// New builds every module; nothing is loaded until Start
func New(opt Options) (*API, error) {
	deps := modkit.FromStore(opt.Store, opt.Config, opt.Metrics)

	profiles, err := profilesmod.New(deps, profilesmod.FromConfig(opt.Config))
	if err != nil {
		return nil, err
	}
	factories := module.MustPortsOf[profilesmod.Ports](profiles).Factories

	detect, err := detectmod.New(deps, detectmod.FromConfig(opt.Config), modkit.WithPorts(factories))
	if err != nil {
		return nil, err
	}
	return &API{
		Profiles: profiles,
		Detect:   detect,
		Meta:     metamod.New(deps, modkit.WithPorts(factories)),
	}, nil
}

// Start loads the profiles and starts the background loops, all bound to ctx
func (a *API) Start(ctx context.Context) error {
	if err := a.Profiles.Start(ctx); err != nil {
		return err
	}
	return a.Detect.Start(ctx)
}

// Mount mounts the API service onto the given router
func (a *API) Mount(r phttp.Router, opt Options) {
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.StackFromConfig(opt.Config)
	if opt.Metrics != nil {
		stack.Observe = opt.Metrics.ObserveHTTP
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		modkit.MountAll(api, a.Profiles, a.Detect, a.Meta)
	})
}
