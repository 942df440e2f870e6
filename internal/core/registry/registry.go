// Package registry aggregates language profiles into one immutable lookup table
//
// Each distinct n-gram maps to a dense array with one probability slot per
// registered language, index-aligned with Languages(). A Registry is built once
// through a Builder and is safe to share across goroutines afterwards; nothing
// in it is mutated after Build returns.
package registry

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"maps"
	"math"
	"slices"

	perr "langdetect/internal/platform/errors"
)

var (
	// ErrInvalidState covers size mismatches, bad slots and broken profiles
	ErrInvalidState = perr.New(perr.ErrorCodeInvalidRegistryState, "registry: invalid state")

	// ErrEmpty is returned when no language was registered
	ErrEmpty = perr.New(perr.ErrorCodeEmptyRegistry, "registry: no languages")

	// ErrDuplicateLanguage is returned when one language id is added twice
	ErrDuplicateLanguage = perr.New(perr.ErrorCodeDuplicateLanguage, "registry: duplicate language")
)

// Registry is the immutable n-gram to per-language probability table
type Registry struct {
	langs []string
	index map[string]int
	probs map[string][]float64
	fp    string
}

// Len returns the number of registered languages
func (r *Registry) Len() int { return len(r.langs) }

// Languages returns the ordered language ids
func (r *Registry) Languages() []string { return slices.Clone(r.langs) }

// Lang returns the language id at index i
func (r *Registry) Lang(i int) string { return r.langs[i] }

// Index returns the slot of lang
func (r *Registry) Index(lang string) (int, bool) {
	i, ok := r.index[lang]
	return i, ok
}

// NGrams returns the number of distinct n-grams
func (r *Registry) NGrams() int { return len(r.probs) }

// Fingerprint is a content hash of the table
// equal fingerprints mean equal languages, grams and probabilities
func (r *Registry) Fingerprint() string { return r.fp }

func fingerprint(langs []string, probs map[string][]float64) string {
	h := sha256.New()
	var n [8]byte
	for _, l := range langs {
		h.Write([]byte(l))
		h.Write([]byte{0})
	}
	for _, g := range slices.Sorted(maps.Keys(probs)) {
		h.Write([]byte(g))
		h.Write([]byte{0})
		for _, p := range probs[g] {
			binary.BigEndian.PutUint64(n[:], math.Float64bits(p))
			h.Write(n[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Probabilities returns the per-language probabilities of gram
// the slice is shared and must not be modified
func (r *Registry) Probabilities(gram string) ([]float64, bool) {
	p, ok := r.probs[gram]
	return p, ok
}

// Without derives a registry that no longer contains langs
func (r *Registry) Without(langs ...string) (*Registry, error) {
	drop := make(map[int]bool, len(langs))
	for _, l := range langs {
		i, ok := r.index[l]
		if !ok {
			return nil, perr.NotFoundf("registry: language %q not registered", l)
		}
		drop[i] = true
	}
	if len(drop) == len(r.langs) {
		return nil, ErrEmpty
	}

	keep := make([]int, 0, len(r.langs)-len(drop))
	out := &Registry{index: make(map[string]int, cap(keep)), probs: make(map[string][]float64, len(r.probs))}
	for i, l := range r.langs {
		if drop[i] {
			continue
		}
		out.index[l] = len(out.langs)
		out.langs = append(out.langs, l)
		keep = append(keep, i)
	}
	for g, src := range r.probs {
		dst := make([]float64, len(keep))
		seen := false
		for j, i := range keep {
			dst[j] = src[i]
			seen = seen || src[i] > 0
		}
		if seen {
			out.probs[g] = dst
		}
	}
	out.fp = fingerprint(out.langs, out.probs)
	return out, nil
}
