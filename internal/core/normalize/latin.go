package normalize

import "strings"

// suppressLatin blanks ASCII Latin letters when non-Latin letters outnumber
// them more than two to one; stray Latin words in Cyrillic or CJK text are
// usually names or code and only add noise
// letters of Latin Extended Additional count as neither
func suppressLatin(s string) string {
	latin, other := 0, 0
	for _, r := range s {
		switch {
		case ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
			latin++
		case r >= 0x0300 && (r < 0x1E00 || r > 0x1EFF):
			other++
		}
	}
	if latin == 0 || latin*2 >= other {
		return s
	}
	return strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return ' '
		}
		return r
	}, s)
}
