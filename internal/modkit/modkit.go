package modkit

import (
	"langdetect/internal/modkit/module"
)

// Module is the surface every API module exposes to the composition root
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// MountAll mounts every module on r in order
func MountAll(r module.Router, mods ...Module) {
	for _, m := range mods {
		if m != nil {
			m.MountRoutes(r)
		}
	}
}
