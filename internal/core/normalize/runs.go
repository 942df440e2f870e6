package normalize

import "langdetect/internal/core/ngram"

// minRun is the shortest run of one rune treated as repetition spam
const minRun = 3

// collapseRuns squashes runs of minRun or more identical runes to a single rune
// "soooo" -> "so", "coffee" is left alone
// class representatives from ngram.Fold stand for many distinct letters and are exempt
func collapseRuns(s string) string {
	if s == "" {
		return s
	}
	in := []rune(s)
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); {
		r := in[i]
		j := i + 1
		for j < len(in) && in[j] == r {
			j++
		}
		if j-i >= minRun && r != ' ' && !ngram.IsRepresentative(r) {
			out = append(out, r)
		} else {
			out = append(out, in[i:j]...)
		}
		i = j
	}
	if len(out) == len(in) {
		return s
	}
	return string(out)
}
