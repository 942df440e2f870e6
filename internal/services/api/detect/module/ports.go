package module

import (
	"langdetect/internal/services/api/detect/domain"
)

// Ports is what the detect module exposes to other modules
type Ports struct {
	Detect domain.ServicePort
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
