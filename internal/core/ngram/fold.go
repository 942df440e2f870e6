package ngram

import "unicode"

// class representatives for scripts whose letters collapse into one feature
const (
	RepVietnamese rune = '\u1EC3'
	RepHiragana   rune = '\u3042'
	RepKatakana   rune = '\u30A2'
	RepBopomofo   rune = '\u3105'
	RepHangul     rune = '\uAC00'
)

// IsRepresentative reports whether r is a class representative produced by Fold
// runs of representatives are legitimate text, not repetition spam
func IsRepresentative(r rune) bool {
	switch r {
	case RepVietnamese, RepHiragana, RepKatakana, RepBopomofo, RepHangul:
		return true
	}
	return false
}

// Fold maps r onto the alphabet profiles are trained on
// anything that is not an allowed letter or mark becomes a space
func Fold(r rune) rune {
	switch {
	case r < 0x80:
		if isASCIILetter(r) {
			return r
		}
		return ' '
	case r == '\u0219': // Romanian comma-below to cedilla
		return '\u015F'
	case r == '\u021B':
		return '\u0163'
	case r == '\u06CC': // Farsi yeh
		return '\u064A'
	case r >= '\u1EA0' && r <= '\u1EFF':
		return RepVietnamese
	case r >= '\u3040' && r <= '\u309F':
		return RepHiragana
	case r >= '\u30A0' && r <= '\u30FF':
		return RepKatakana
	case (r >= '\u3100' && r <= '\u312F') || (r >= '\u31A0' && r <= '\u31BF'):
		return RepBopomofo
	case (r >= '\uAC00' && r <= '\uD7AF') || (r >= '\u1100' && r <= '\u11FF') || (r >= '\u3130' && r <= '\u318F'):
		return RepHangul
	}
	if unicode.IsDigit(r) || !Allowed(r) {
		return ' '
	}
	return r
}
