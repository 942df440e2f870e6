// Package ngram extracts character n-grams from normalized text
//
// A word is framed by boundary spaces so profiles learn word starts and ends:
// the word "ab" yields "a", " a", "b", "ab", " ab", "b ", "ab " and never a gram
// spanning two words. Grams wider than one rune are kept only when every
// letter in them belongs to the same script family
package ngram

import (
	"iter"
	"unicode"
)

// MaxOrder is the widest n-gram produced
const MaxOrder = 3

// Gram is one extracted n-gram with its order
type Gram struct {
	Text  string
	Order int
}

// window tracks the trailing runes of the current word
type window struct {
	buf     [MaxOrder]rune
	n       int
	capital bool
}

func (w *window) reset() {
	w.buf[0] = ' '
	w.n = 1
	w.capital = false
}

func (w *window) last() rune { return w.buf[w.n-1] }

// push appends r and updates the acronym flag
// it reports false when r only closed a boundary
func (w *window) push(r rune) bool {
	last := w.last()
	if last == ' ' {
		w.reset()
		if r == ' ' {
			return false
		}
	} else if w.n == MaxOrder {
		copy(w.buf[:], w.buf[1:])
		w.n--
	}
	w.buf[w.n] = r
	w.n++

	if unicode.IsUpper(r) {
		if unicode.IsUpper(last) {
			w.capital = true
		}
	} else {
		w.capital = false
	}
	return true
}

// gram returns the trailing n runes of the window when they form a usable gram
func (w *window) gram(n int) (string, bool) {
	if w.capital || w.n < n {
		return "", false
	}
	rs := w.buf[w.n-n : w.n]
	if n == 1 {
		if rs[0] == ' ' {
			return "", false
		}
		return string(rs), true
	}
	if !homogeneous(rs) {
		return "", false
	}
	return string(rs), true
}

// Extract yields the n-grams of text in reading order
// text is expected to be normalized; every rune is fed through Fold regardless
func Extract(text string) iter.Seq[Gram] {
	return func(yield func(Gram) bool) {
		var w window
		w.reset()
		emit := func(r rune) bool {
			if !w.push(r) {
				return true
			}
			for n := 1; n <= MaxOrder; n++ {
				g, ok := w.gram(n)
				if !ok {
					continue
				}
				if !yield(Gram{Text: g, Order: n}) {
					return false
				}
			}
			return true
		}
		for _, r := range text {
			if !emit(Fold(r)) {
				return
			}
		}
		emit(' ')
	}
}

// Texts collects the gram strings of seq
func Texts(seq iter.Seq[Gram]) []string {
	var out []string
	for g := range seq {
		out = append(out, g.Text)
	}
	return out
}
