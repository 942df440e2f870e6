package strings

import (
	"testing"

	kit "langdetect/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	// non-empty slice should be returned as-is
	in := []int{1, 2, 3}
	if got := IfEmpty(in, []int{9}); len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	// empty slice should fall back to default
	var empty []string
	if got := IfEmpty(empty, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("meta", "name"); got != "meta" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"detect", "/detect"},
		{"/detect/", "/detect"},
		{"  /profiles  ", "/profiles"},
		{"//meta//", "/meta"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Errorf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}
