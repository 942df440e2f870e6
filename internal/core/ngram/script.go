package ngram

import "unicode"

// Family groups the scripts whose letters may share one n-gram
type Family uint8

// Families known to the extractor
const (
	FamilyNone Family = iota
	FamilyInherited
	FamilyLatin
	FamilyGreek
	FamilyCyrillic
	FamilyArmenian
	FamilyHebrew
	FamilyArabic
	FamilySyriac
	FamilyThaana
	FamilyDevanagari
	FamilyBengali
	FamilyGurmukhi
	FamilyGujarati
	FamilyOriya
	FamilyTamil
	FamilyTelugu
	FamilyKannada
	FamilyMalayalam
	FamilySinhala
	FamilyThai
	FamilyLao
	FamilyTibetan
	FamilyMyanmar
	FamilyGeorgian
	FamilyHangul
	FamilyEthiopic
	FamilyCherokee
	FamilyKhmer
	FamilyMongolian
	FamilyCJK
)

// families is the letter allow-list; order puts the common scripts first
var families = []struct {
	family Family
	tables []*unicode.RangeTable
}{
	{FamilyLatin, []*unicode.RangeTable{unicode.Latin}},
	{FamilyCyrillic, []*unicode.RangeTable{unicode.Cyrillic}},
	{FamilyCJK, []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Bopomofo}},
	{FamilyArabic, []*unicode.RangeTable{unicode.Arabic}},
	{FamilyGreek, []*unicode.RangeTable{unicode.Greek}},
	{FamilyHangul, []*unicode.RangeTable{unicode.Hangul}},
	{FamilyDevanagari, []*unicode.RangeTable{unicode.Devanagari}},
	{FamilyHebrew, []*unicode.RangeTable{unicode.Hebrew}},
	{FamilyThai, []*unicode.RangeTable{unicode.Thai}},
	{FamilyArmenian, []*unicode.RangeTable{unicode.Armenian}},
	{FamilyGeorgian, []*unicode.RangeTable{unicode.Georgian}},
	{FamilyBengali, []*unicode.RangeTable{unicode.Bengali}},
	{FamilyGurmukhi, []*unicode.RangeTable{unicode.Gurmukhi}},
	{FamilyGujarati, []*unicode.RangeTable{unicode.Gujarati}},
	{FamilyOriya, []*unicode.RangeTable{unicode.Oriya}},
	{FamilyTamil, []*unicode.RangeTable{unicode.Tamil}},
	{FamilyTelugu, []*unicode.RangeTable{unicode.Telugu}},
	{FamilyKannada, []*unicode.RangeTable{unicode.Kannada}},
	{FamilyMalayalam, []*unicode.RangeTable{unicode.Malayalam}},
	{FamilySinhala, []*unicode.RangeTable{unicode.Sinhala}},
	{FamilyLao, []*unicode.RangeTable{unicode.Lao}},
	{FamilyTibetan, []*unicode.RangeTable{unicode.Tibetan}},
	{FamilyMyanmar, []*unicode.RangeTable{unicode.Myanmar}},
	{FamilySyriac, []*unicode.RangeTable{unicode.Syriac}},
	{FamilyThaana, []*unicode.RangeTable{unicode.Thaana}},
	{FamilyEthiopic, []*unicode.RangeTable{unicode.Ethiopic}},
	{FamilyCherokee, []*unicode.RangeTable{unicode.Cherokee}},
	{FamilyKhmer, []*unicode.RangeTable{unicode.Khmer}},
	{FamilyMongolian, []*unicode.RangeTable{unicode.Mongolian}},
}

// FamilyOf reports the script family of r
// combining marks report FamilyInherited and join whatever they follow
func FamilyOf(r rune) Family {
	if r < 0x80 {
		if isASCIILetter(r) {
			return FamilyLatin
		}
		return FamilyNone
	}
	if unicode.Is(unicode.Inherited, r) {
		return FamilyInherited
	}
	for _, f := range families {
		for _, t := range f.tables {
			if unicode.Is(t, r) {
				return f.family
			}
		}
	}
	// spacing marks of Indic scripts are tagged with their script above
	if unicode.IsMark(r) {
		return FamilyInherited
	}
	return FamilyNone
}

// Allowed reports whether r survives normalization as a letter or mark
func Allowed(r rune) bool {
	if !unicode.IsLetter(r) && !unicode.IsMark(r) {
		return false
	}
	return FamilyOf(r) != FamilyNone
}

// homogeneous reports whether all non-space runes share one family
func homogeneous(rs []rune) bool {
	want := FamilyNone
	for _, r := range rs {
		if r == ' ' {
			continue
		}
		f := FamilyOf(r)
		switch {
		case f == FamilyInherited:
			continue
		case want == FamilyNone:
			want = f
		case f != want:
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
