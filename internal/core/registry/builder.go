package registry

import (
	"langdetect/internal/core/profile"
	perr "langdetect/internal/platform/errors"
)

// Builder assembles a Registry from profiles added one at a time
// the final language count is declared up front and every array is sized to it
type Builder struct {
	size   int
	langs  []string
	filled int
	index  map[string]int
	probs  map[string][]float64
	floor  float64
	built  bool
}

// Option configures a Builder
type Option func(*Builder)

// WithPruneFloor drops per-language probabilities below f
// n-grams left with no slot above the floor are not stored at all
func WithPruneFloor(f float64) Option {
	return func(b *Builder) {
		if f > 0 {
			b.floor = f
		}
	}
}

// NewBuilder returns an empty Builder
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{index: map[string]int{}, probs: map[string][]float64{}}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Add registers p at slot index of a registry declared to hold size languages
// the first call fixes the size; every later call must restate it
func (b *Builder) Add(p *profile.Profile, index, size int) error {
	switch {
	case b.built:
		return perr.Wrapf(ErrInvalidState, perr.ErrorCodeInvalidRegistryState, "registry: builder already finalized")
	case size <= 0:
		return perr.Wrapf(ErrInvalidState, perr.ErrorCodeInvalidRegistryState, "registry: declared size %d", size)
	case b.size != 0 && size != b.size:
		return perr.Wrapf(ErrInvalidState, perr.ErrorCodeInvalidRegistryState, "registry: declared size %d, builder holds %d", size, b.size)
	case index < 0 || index >= size:
		return perr.Wrapf(ErrInvalidState, perr.ErrorCodeInvalidRegistryState, "registry: index %d outside capacity %d", index, size)
	}
	if err := p.Validate(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidRegistryState, "registry: add slot %d", index)
	}
	if _, dup := b.index[p.Lang]; dup {
		return perr.Wrapf(ErrDuplicateLanguage, perr.ErrorCodeDuplicateLanguage, "registry: %s already registered", p.Lang)
	}

	if b.size == 0 {
		b.size = size
		b.langs = make([]string, size)
	}
	if b.langs[index] != "" {
		return perr.Wrapf(ErrInvalidState, perr.ErrorCodeInvalidRegistryState, "registry: slot %d already holds %s", index, b.langs[index])
	}

	for g := range p.Counts {
		prob := p.Prob(g)
		if prob <= 0 || prob < b.floor {
			continue
		}
		arr, ok := b.probs[g]
		if !ok {
			arr = make([]float64, b.size)
			b.probs[g] = arr
		}
		arr[index] = prob
	}
	b.langs[index] = p.Lang
	b.index[p.Lang] = index
	b.filled++
	return nil
}

// Build finalizes the registry; it fails until every declared slot is filled
func (b *Builder) Build() (*Registry, error) {
	if b.size == 0 {
		return nil, ErrEmpty
	}
	if b.filled < b.size {
		return nil, perr.Wrapf(ErrInvalidState, perr.ErrorCodeInvalidRegistryState, "registry: %d of %d languages added", b.filled, b.size)
	}
	b.built = true
	r := &Registry{langs: b.langs, index: b.index, probs: b.probs, fp: fingerprint(b.langs, b.probs)}
	b.langs, b.index, b.probs = nil, nil, nil
	return r, nil
}

// FromProfiles builds a registry holding ps in order
func FromProfiles(ps []*profile.Profile, opts ...Option) (*Registry, error) {
	if len(ps) == 0 {
		return nil, ErrEmpty
	}
	b := NewBuilder(opts...)
	for i, p := range ps {
		if err := b.Add(p, i, len(ps)); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
