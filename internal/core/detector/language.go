package detector

import (
	"cmp"
	"slices"
	"strconv"
)

// Unknown is what Detect answers when no language is confident enough
const Unknown = "unknown"

// Language is one ranked entry of a distribution
type Language struct {
	Lang string  `json:"lang"`
	Prob float64 `json:"prob"`
}

// String renders "lang:prob"
func (l Language) String() string {
	return l.Lang + ":" + strconv.FormatFloat(l.Prob, 'f', -1, 64)
}

// rank lists the entries of probs above threshold, most probable first
// ties keep registry order
func rank(langs []string, probs []float64, threshold float64) []Language {
	out := make([]Language, 0, len(probs))
	for i, p := range probs {
		if p > threshold {
			out = append(out, Language{Lang: langs[i], Prob: p})
		}
	}
	slices.SortStableFunc(out, func(a, b Language) int {
		return cmp.Compare(b.Prob, a.Prob)
	})
	return out
}
