package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops what must never reach the pipeline:
// - ASCII controls except '\n', '\r', '\t' which become spaces
// - DEL (0x7F)
// - C1 controls U+0080..U+009F
// - invalid UTF-8 bytes
// Fast path returns s unchanged when no cleaning is needed
func Sanitize(s string) string {
	if clean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size == 1:
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r < 0x20, r == 0x7F, r >= 0x80 && r <= 0x9F:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func clean(s string) bool {
	for i := 0; i < len(s); {
		c := s[i]
		if c < 0x80 {
			if c < 0x20 || c == 0x7F {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || r <= 0x9F {
			return false
		}
		i += size
	}
	return true
}
