// Package normalize reduces raw text to the canonical form n-grams are read from
// Pipeline order
// 1 Sanitize controls and invalid UTF-8
// 2 Unicode NFKC, joiners become spaces, other format chars dropped
// 3 URLs and e-mail addresses become spaces
// 4 Per rune folding via ngram.Fold: digits punctuation symbols and unknown scripts become spaces
// 5 Collapse runs of 3+ identical runes to one
// 6 Drop ASCII Latin letters when other scripts dominate
// 7 Collapse whitespace to single spaces and trim
//
// Removed runes are replaced by a space rather than deleted so no two runes
// become neighbours that were not neighbours before; this keeps the output a
// fixed point: Normalize(Normalize(x)) == Normalize(x)
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"mvdan.cc/xurls/v2"

	"langdetect/internal/core/ngram"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// urls matches schemed and bare URLs as well as e-mail addresses
var urls = xurls.Relaxed()

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Map(joinerToSpace),
			runes.Remove(runes.In(unicode.Cf)), // BOM, soft hyphen, bidi marks
		)
	},
}

// ZWNJ and ZWJ separate morphemes, keep the separation
func joinerToSpace(r rune) rune {
	if r == '\u200C' || r == '\u200D' {
		return ' '
	}
	return r
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1
	s = Sanitize(s)
	s = strings.ToValidUTF8(s, "")

	// 2
	s = nfkc(s)

	// 3
	s = urls.ReplaceAllString(s, " ")

	// 4, folding can expose new compositions so settle until NFKC stable
	s = fold(s)
	for i := 0; i < 3 && !norm.NFKC.IsNormalString(s); i++ {
		s = fold(nfkc(s))
	}

	// 5
	s = collapseRuns(s)

	// 6
	s = suppressLatin(s)

	// 7
	return collapseSpaces(s)
}

func nfkc(s string) string {
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	return ns
}

// fold maps every rune through ngram.Fold, returning s when nothing changes
func fold(s string) string {
	changed := false
	for _, r := range s {
		if ngram.Fold(r) != r {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(ngram.Fold(r))
	}
	return b.String()
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
