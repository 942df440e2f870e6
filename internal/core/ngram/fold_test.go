package ngram

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   rune
		out  rune
	}{
		{"ascii letter", 'q', 'q'},
		{"ascii punct", '!', ' '},
		{"ascii digit", '7', ' '},
		{"latin1 letter", 'é', 'é'},
		{"latin1 guillemet", '«', ' '},
		{"romanian s comma", 'ș', 'ş'},
		{"romanian t comma", 'ț', 'ţ'},
		{"farsi yeh", 'ی', 'ي'},
		{"vietnamese", 'ở', RepVietnamese},
		{"hiragana", 'ひ', RepHiragana},
		{"katakana", 'カ', RepKatakana},
		{"bopomofo", 'ㄆ', RepBopomofo},
		{"hangul syllable", '한', RepHangul},
		{"hangul jamo", 'ᅡ', RepHangul},
		{"han", '中', '中'},
		{"cyrillic", 'ж', 'ж'},
		{"devanagari sign", 'ि', 'ि'},
		{"arabic digit", '٣', ' '},
		{"general punct", '—', ' '},
		{"symbol", '€', ' '},
		{"emoji", '😀', ' '},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Fold(c.in)
			if got != c.out {
				t.Fatalf("Fold(%U) = %U, want %U", c.in, got, c.out)
			}
			if again := Fold(got); again != got {
				t.Fatalf("Fold not stable on %U: %U", got, again)
			}
		})
	}
}

func TestFamilyOf(t *testing.T) {
	cases := []struct {
		in   rune
		want Family
	}{
		{'a', FamilyLatin},
		{'ß', FamilyLatin},
		{'ж', FamilyCyrillic},
		{'α', FamilyGreek},
		{'中', FamilyCJK},
		{'あ', FamilyCJK},
		{'\u0301', FamilyInherited},
		{'1', FamilyNone},
		{'ا', FamilyArabic},
	}
	for _, c := range cases {
		if got := FamilyOf(c.in); got != c.want {
			t.Fatalf("FamilyOf(%U) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIsRepresentative(t *testing.T) {
	for _, r := range []rune{RepHangul, RepHiragana, RepKatakana, RepBopomofo, RepVietnamese} {
		if !IsRepresentative(r) {
			t.Fatalf("%U should be a representative", r)
		}
	}
	if IsRepresentative('a') {
		t.Fatalf("'a' is not a representative")
	}
}
