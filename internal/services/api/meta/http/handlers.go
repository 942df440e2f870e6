// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/version"
	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/services/profiles/domain"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// PingFunc adapts a plain function to Pinger
type PingFunc func(stdctx.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx stdctx.Context) error { return f(ctx) }

// Deps are the handler dependencies
// backends are any so a disabled one can be passed as an untyped nil
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Factories   domain.FactoryPort
	PG          any
	CH          any
	Redis       any
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/detector", h.detector)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"langdetect-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-19T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"langdetect-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DetectorResponse reports the active registry and session defaults
type DetectorResponse struct {
	Languages int               `json:"languages"        example:"55"`
	NGrams    int               `json:"ngrams"           example:"172304"`
	Config    *detector.Config  `json:"config,omitempty"`
	Build     version.BuildInfo `json:"build"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	// no registry means detection cannot answer at all
	reg := ReadyCheck{Name: "registry", Status: "ok"}
	if h.deps.Factories == nil || h.deps.Factories.Current() == nil {
		reg = ReadyCheck{Name: "registry", Status: "fail", Error: "no profiles loaded"}
	}
	checks := []ReadyCheck{reg, check("pg", h.deps.PG), check("ch", h.deps.CH), check("redis", h.deps.Redis)}

	overall := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			overall = "fail"
		case "unknown":
			if overall == "ok" {
				overall = "degraded"
			}
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Active registry and detector defaults
// @Tags Meta
// @Produce json
// @Success 200 {object} DetectorResponse "ok"
// @Router /meta/detector [get]
func (h *handlers) detector(_ *http.Request) (any, error) {
	out := DetectorResponse{Build: version.Info()}
	if h.deps.Factories == nil {
		return out, nil
	}
	if f := h.deps.Factories.Current(); f != nil {
		cfg := f.Config()
		out.Languages = f.Registry().Len()
		out.NGrams = f.Registry().NGrams()
		out.Config = &cfg
	}
	return out, nil
}
