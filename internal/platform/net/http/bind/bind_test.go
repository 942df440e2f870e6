package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "langdetect/internal/platform/errors"
	kit "langdetect/internal/platform/testkit"

	"github.com/goccy/go-json"
)

type payload struct {
	Text string  `json:"text" validate:"required"`
	Seed *uint64 `json:"seed,omitempty"`
}

func post(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	}
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[payload](post(`{"text":"hello","seed":7}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "hello" || got.Seed == nil || *got.Seed != 7 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		opts []JSONOptions
		want perr.ErrorCode
	}{
		{"empty body", "", nil, perr.ErrorCodeJSON},
		{"whitespace body", "  \n", nil, perr.ErrorCodeJSON},
		{"invalid json", `{`, nil, perr.ErrorCodeJSON},
		{"unknown field", `{"text":"a","lang":"en"}`, nil, perr.ErrorCodeJSON},
		{"trailing data", `{"text":"a"} {"text":"b"}`, nil, perr.ErrorCodeJSON},
		{"too large", `{"text":"abcdefgh"}`, []JSONOptions{{MaxBytes: 8, DisallowUnknown: true}}, perr.ErrorCodeJSON},
		{"missing text", `{"seed":1}`, nil, perr.ErrorCodeValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseJSON[payload](post(c.body), c.opts...)
			if perr.CodeOf(err) != c.want {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), c.want, err)
			}
		})
	}
}

func TestParseJSON_ValidationField(t *testing.T) {
	_, err := ParseJSON[payload](post(`{"text":""}`))
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("expected *perr.Error, got %T", err)
	}
	if e.Field() != "text" {
		t.Fatalf("field = %q, want text", e.Field())
	}
	kit.MustContain(t, e.Error(), "text")
}

func TestParseJSON_AllowUnknownAndEmpty(t *testing.T) {
	opts := JSONOptions{AllowEmptyBody: true}
	type loose struct {
		Note string `json:"note"`
	}
	got, err := ParseJSON[loose](post(""), opts)
	if err != nil || got != (loose{}) {
		t.Fatalf("empty body: %+v, %v", got, err)
	}
	got, err = ParseJSON[loose](post(`{"note":"x","extra":1}`), opts)
	if err != nil || got.Note != "x" {
		t.Fatalf("unknown field allowed: %+v, %v", got, err)
	}
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	_, err := ParseJSON[payload](post(`{"text":"a"}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want JSON", perr.CodeOf(err))
	}
}
