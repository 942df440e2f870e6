// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "langdetect/internal/platform/net/http"
)

// Router is the platform router seam modules mount on
type Router = phttp.Router

// Module mounts routes and publishes a port bundle for cross wiring
type Module interface {
	MountRoutes(r Router)
	Ports() any
	Name() string
}
