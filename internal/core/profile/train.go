package profile

import (
	"langdetect/internal/core/ngram"
	"langdetect/internal/core/normalize"
)

const (
	// minFreq is the floor below which rare grams are dropped
	minFreq = 2
	// lessFreqRatio scales the drop threshold with corpus size
	lessFreqRatio = 100000
)

var normalizer = normalize.New()

// Add counts one occurrence of gram
// grams that are empty, wider than MaxOrder or added to an unnamed profile are ignored
func (p *Profile) Add(gram string) {
	if p.Lang == "" {
		return
	}
	k := Order(gram)
	if k == 0 {
		return
	}
	if p.Counts == nil {
		p.Counts = map[string]int{}
	}
	p.Counts[gram]++
	p.Totals[k-1]++
}

// Update normalizes text and counts every n-gram in it
func (p *Profile) Update(text string) {
	if p.Lang == "" || text == "" {
		return
	}
	for g := range ngram.Extract(normalizer.Normalize(text)) {
		p.Add(g.Text)
	}
}

// OmitLessFreq prunes rare grams so the profile generalizes
// grams at or below max(Totals[0]/lessFreqRatio, minFreq) are dropped; when
// single ASCII letters make up less than a third of all unigrams the language
// is not Latin-written and every gram containing ASCII letters is dropped too
func (p *Profile) OmitLessFreq() {
	if p.Lang == "" {
		return
	}
	threshold := max(p.Totals[0]/lessFreqRatio, minFreq)

	roman := 0
	for g, c := range p.Counts {
		if c <= threshold {
			p.remove(g, c)
			continue
		}
		if len(g) == 1 && isASCIILetter(rune(g[0])) {
			roman += c
		}
	}

	if roman < p.Totals[0]/3 {
		for g, c := range p.Counts {
			if hasASCIILetter(g) {
				p.remove(g, c)
			}
		}
	}
}

func (p *Profile) remove(g string, c int) {
	p.Totals[Order(g)-1] -= c
	delete(p.Counts, g)
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func hasASCIILetter(s string) bool {
	for _, r := range s {
		if isASCIILetter(r) {
			return true
		}
	}
	return false
}
