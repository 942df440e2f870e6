package detector

import (
	"langdetect/internal/core/registry"
)

// Factory creates sessions over one registry with shared defaults
// it is immutable and safe for concurrent use
type Factory struct {
	reg *registry.Registry
	cfg Config
}

// NewFactory validates cfg and binds it to reg
func NewFactory(reg *registry.Registry, cfg Config) (*Factory, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, registry.ErrEmpty
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Factory{reg: reg, cfg: cfg}, nil
}

// Registry returns the shared registry
func (f *Factory) Registry() *registry.Registry { return f.reg }

// Config returns the default session options
func (f *Factory) Config() Config { return f.cfg }

// Languages lists the registered language ids
func (f *Factory) Languages() []string { return f.reg.Languages() }

// Create returns a fresh session with the default options
func (f *Factory) Create() *Detector {
	return &Detector{reg: f.reg, cfg: f.cfg}
}

// CreateSeeded returns a fresh session pinned to seed
func (f *Factory) CreateSeeded(seed uint64) *Detector {
	return &Detector{reg: f.reg, cfg: f.cfg.WithSeed(seed)}
}

// Detect runs a one-shot session over text
func (f *Factory) Detect(text string) (string, error) {
	d := f.Create()
	d.Append(text)
	return d.Detect()
}

// Probabilities runs a one-shot session over text and returns the ranked list
func (f *Factory) Probabilities(text string) ([]Language, error) {
	d := f.Create()
	d.Append(text)
	return d.Probabilities()
}
