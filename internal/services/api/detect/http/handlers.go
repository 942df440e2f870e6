// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/services/api/detect/domain"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// best language with its ranked list
	httpkit.PostJSON(r, "/", h.detect)

	// ranked list only
	httpkit.PostJSON(r, "/probabilities", h.probabilities)

	// registered languages
	httpkit.Get(r, "/languages", h.languages)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Detect the language of a text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectResp "ok"
// @Failure 422 {object} httpkit.Envelope "no known n-gram in text"
// @Failure 503 {object} httpkit.Envelope "no profiles loaded"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// @Summary Language probabilities of a text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.ProbabilitiesResp "ok"
// @Router /detect/probabilities [post]
func (h *handlers) probabilities(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Probabilities(r.Context(), in)
}

// @Summary Registered languages
// @Tags Detect
// @Produce json
// @Success 200 {object} domain.LanguagesResp "ok"
// @Router /detect/languages [get]
func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	return h.svc.Languages(r.Context())
}
