package module

import "langdetect/internal/services/profiles/domain"

// Ports exposes the active factory and the reload hook to other modules
type Ports struct {
	Factories domain.FactoryPort
	Reloader  domain.ReloadPort
}
