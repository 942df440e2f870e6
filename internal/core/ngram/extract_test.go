package ngram

import (
	"slices"
	"testing"
)

func collect(text string) []Gram {
	var out []Gram
	for g := range Extract(text) {
		out = append(out, g)
	}
	return out
}

func TestExtract_WordFraming(t *testing.T) {
	got := Texts(Extract("ab"))
	want := []string{"a", " a", "b", "ab", " ab", "b ", "ab "}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract(ab) = %q, want %q", got, want)
	}
}

func TestExtract_DigitIsBoundary(t *testing.T) {
	got := Texts(Extract("A1"))
	want := []string{"A", " A", "A ", " A "}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract(A1) = %q, want %q", got, want)
	}
}

func TestExtract_Orders(t *testing.T) {
	for _, g := range collect("hello world") {
		if n := len([]rune(g.Text)); n != g.Order {
			t.Fatalf("gram %q has order %d but %d runes", g.Text, g.Order, n)
		}
		if g.Order < 1 || g.Order > MaxOrder {
			t.Fatalf("gram %q has order %d", g.Text, g.Order)
		}
	}
}

func TestExtract_NeverCrossesSpace(t *testing.T) {
	for _, g := range collect("ab cd ef") {
		rs := []rune(g.Text)
		for i := 1; i < len(rs)-1; i++ {
			if rs[i] == ' ' {
				t.Fatalf("gram %q crosses a word boundary", g.Text)
			}
		}
		if g.Text == " " {
			t.Fatalf("lone space emitted")
		}
	}
}

func TestExtract_ScriptHomogeneous(t *testing.T) {
	grams := Texts(Extract("aж"))
	for _, g := range grams {
		if g == "aж" || g == " aж" || g == "aж " {
			t.Fatalf("mixed-script gram %q emitted", g)
		}
	}
	if !slices.Contains(grams, "ж") || !slices.Contains(grams, "a") {
		t.Fatalf("unigrams missing: %q", grams)
	}
}

func TestExtract_CJKFamilyMixes(t *testing.T) {
	// kana fold to one class and may sit next to Han in one gram
	grams := Texts(Extract("日本語を"))
	if !slices.Contains(grams, "語あ") {
		t.Fatalf("expected Han+kana gram, got %q", grams)
	}
}

func TestExtract_AcronymsSuppressed(t *testing.T) {
	grams := Texts(Extract("NASA"))
	want := []string{"N", " N", "A ", "SA "}
	if !slices.Equal(grams, want) {
		t.Fatalf("Extract(NASA) = %q, want %q", grams, want)
	}
}

func TestExtract_Empty(t *testing.T) {
	if got := collect(""); len(got) != 0 {
		t.Fatalf("Extract(\"\") = %v, want none", got)
	}
	if got := collect(" ... 123 "); len(got) != 0 {
		t.Fatalf("Extract(punct) = %v, want none", got)
	}
}

func TestExtract_StopsEarly(t *testing.T) {
	n := 0
	for range Extract("abcdef") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("iteration did not stop, n=%d", n)
	}
}
