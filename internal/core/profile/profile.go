// Package profile holds per-language n-gram frequency tables
//
// A Profile counts n-grams of order 1 to 3 and keeps one running total per
// order. Totals[k] always equals the sum of counts of the order k+1 grams;
// Validate checks that before a profile is handed to a registry.
package profile

import (
	"regexp"
	"unicode/utf8"

	perr "langdetect/internal/platform/errors"
)

// MaxOrder is the widest n-gram a profile stores
const MaxOrder = 3

// ErrInvalid is the sentinel for profiles breaking their invariants
var ErrInvalid = perr.New(perr.ErrorCodeInvalidRegistryState, "profile: invalid")

// langID accepts ids like "en", "fil" or "zh-cn"; they double as file names and store keys
var langID = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z0-9]{1,8})*$`)

// CheckLang rejects language ids that are not safe as a file name or key
func CheckLang(lang string) error {
	if !langID.MatchString(lang) {
		return perr.WithField(perr.InvalidArgf("profile: bad language id %q", lang), "name")
	}
	return nil
}

// Profile is the statistical fingerprint of one language
type Profile struct {
	Lang   string         `json:"name"`
	Counts map[string]int `json:"freq"`
	Totals [MaxOrder]int  `json:"n_words"`
}

// New returns an empty profile for lang
func New(lang string) *Profile {
	return &Profile{Lang: lang, Counts: map[string]int{}}
}

// Order returns the n-gram order of gram, 0 when it is not a storable gram
func Order(gram string) int {
	n := utf8.RuneCountInString(gram)
	if n < 1 || n > MaxOrder {
		return 0
	}
	return n
}

// Len returns the number of distinct n-grams
func (p *Profile) Len() int { return len(p.Counts) }

// Prob returns count/total for gram, 0 when the gram or its order total is missing
func (p *Profile) Prob(gram string) float64 {
	k := Order(gram)
	if k == 0 {
		return 0
	}
	total := p.Totals[k-1]
	if total <= 0 {
		return 0
	}
	return float64(p.Counts[gram]) / float64(total)
}

// Validate checks the language id, every gram and the per-order totals
func (p *Profile) Validate() error {
	if p == nil {
		return perr.Wrapf(ErrInvalid, perr.ErrorCodeInvalidRegistryState, "profile: nil")
	}
	if p.Lang == "" {
		return perr.Wrapf(ErrInvalid, perr.ErrorCodeInvalidRegistryState, "profile: missing language id")
	}
	if !langID.MatchString(p.Lang) {
		return perr.Wrapf(ErrInvalid, perr.ErrorCodeInvalidRegistryState, "profile: bad language id %q", p.Lang)
	}
	var sums [MaxOrder]int
	for g, c := range p.Counts {
		k := Order(g)
		if k == 0 {
			return perr.Wrapf(ErrInvalid, perr.ErrorCodeInvalidRegistryState, "profile %s: gram %q has %d runes", p.Lang, g, utf8.RuneCountInString(g))
		}
		if c < 0 {
			return perr.Wrapf(ErrInvalid, perr.ErrorCodeInvalidRegistryState, "profile %s: gram %q has negative count %d", p.Lang, g, c)
		}
		sums[k-1] += c
	}
	for k := range MaxOrder {
		if sums[k] != p.Totals[k] {
			return perr.Wrapf(ErrInvalid, perr.ErrorCodeInvalidRegistryState,
				"profile %s: order %d total is %d but counts sum to %d", p.Lang, k+1, p.Totals[k], sums[k])
		}
	}
	return nil
}

// Clone returns a deep copy
func (p *Profile) Clone() *Profile {
	c := &Profile{Lang: p.Lang, Totals: p.Totals, Counts: make(map[string]int, len(p.Counts))}
	for g, n := range p.Counts {
		c.Counts[g] = n
	}
	return c
}
