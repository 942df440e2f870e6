// Package http exposes the profile registry admin endpoints
package http

import (
	"context"
	stdhttp "net/http"

	"langdetect/internal/core/profile"
	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/services/profiles/domain"
)

// Service is what the handlers need from the profiles service
type Service interface {
	List(ctx context.Context) (domain.ListResp, error)
	ReloadNow(ctx context.Context) (domain.ReloadResp, error)
	Put(ctx context.Context, p *profile.Profile) (domain.ReloadResp, error)
	Remove(ctx context.Context, lang string) (domain.ReloadResp, error)
}

type handlers struct{ svc Service }

// Register mounts the read endpoint, and the write endpoints when admin is set
func Register(r httpkit.Router, svc Service, admin bool) {
	h := &handlers{svc: svc}
	httpkit.Get(r, "/", h.list)
	if !admin {
		return
	}
	httpkit.Post(r, "/reload", h.reload)
	httpkit.PutJSON(r, "/", h.put)
	httpkit.PostJSON(r, "/remove", h.remove)
}

// @Summary Active profile registry
// @Tags Profiles
// @Produce json
// @Success 200 {object} domain.ListResp
// @Router /profiles [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Rebuild the registry from its source
// @Tags Profiles
// @Produce json
// @Success 200 {object} domain.ReloadResp
// @Router /profiles/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	return h.svc.ReloadNow(r.Context())
}

// @Summary Store a profile and reload
// @Tags Profiles
// @Accept json
// @Produce json
// @Success 200 {object} domain.ReloadResp
// @Router /profiles [put]
func (h *handlers) put(r *stdhttp.Request, p profile.Profile) (any, error) {
	return h.svc.Put(r.Context(), &p)
}

// @Summary Drop a language from the registry
// @Tags Profiles
// @Accept json
// @Produce json
// @Success 200 {object} domain.ReloadResp
// @Router /profiles/remove [post]
func (h *handlers) remove(r *stdhttp.Request, in domain.RemoveInput) (any, error) {
	return h.svc.Remove(r.Context(), in.Lang)
}
