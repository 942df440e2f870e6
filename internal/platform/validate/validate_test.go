package validate

import (
	"testing"

	perr "langdetect/internal/platform/errors"
)

type sample struct {
	Text   string  `json:"text" validate:"required"`
	Trials int     `json:"n_trial" validate:"min=1"`
	Conv   float64 `json:"convergence" validate:"gt=0"`
	Skip   string  `json:"-"`
}

func TestStruct(t *testing.T) {
	cases := []struct {
		name  string
		in    sample
		field string
		msg   string
	}{
		{"ok", sample{Text: "x", Trials: 1, Conv: 0.5}, "", ""},
		{"required", sample{Trials: 1, Conv: 0.5}, "text", "text is a required field"},
		{"min", sample{Text: "x", Trials: 0, Conv: 0.5}, "n_trial", "n_trial must be at least 1"},
		{"gt", sample{Text: "x", Trials: 1}, "convergence", "convergence must be greater than 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if c.field == "" {
				if err != nil {
					t.Fatalf("Struct: %v", err)
				}
				return
			}
			e, ok := perr.As(err)
			if !ok || e.Code() != perr.ErrorCodeValidation {
				t.Fatalf("err = %v, want validation error", err)
			}
			if e.Field() != c.field || e.Error() != c.msg {
				t.Fatalf("field=%q msg=%q, want %q %q", e.Field(), e.Error(), c.field, c.msg)
			}
		})
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	if err := Struct(42); !perr.IsCode(err, perr.ErrorCodeUnknown) || err == nil {
		t.Fatalf("err = %v", err)
	}
}

func TestGetIsSingleton(t *testing.T) {
	if Get() != Get() {
		t.Fatalf("Get returned different instances")
	}
}
