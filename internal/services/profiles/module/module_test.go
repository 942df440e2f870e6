package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"langdetect/internal/core/profile"
	"langdetect/internal/modkit"
	"langdetect/internal/modkit/module"
	"langdetect/internal/platform/config"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/platform/metrics"
	phttp "langdetect/internal/platform/net/http"
	"langdetect/internal/platform/store/bolt"
	"langdetect/internal/services/profiles/domain"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func writeProfiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for lang, text := range map[string]string{
		"en": "the cat sat on the mat and the dog ate the bone",
		"fr": "le chat est sur la table et le chien mange",
	} {
		p := profile.New(lang)
		p.Update(text)
		if _, err := p.WriteFile(dir); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func TestFromConfig(t *testing.T) {
	t.Setenv("PROFILES_SOURCE", "bolt")
	t.Setenv("PROFILES_WATCH", "true")
	t.Setenv("DETECT_SEED", "42")
	t.Setenv("DETECT_TRIALS", "3")

	o := FromConfig(config.New())
	if o.Source != SourceBolt || !o.Watch || o.Dir != "profiles" || !o.Migrate {
		t.Fatalf("options = %+v", o)
	}
	if o.Detector.Seed == nil || *o.Detector.Seed != 42 || o.Detector.Trials != 3 {
		t.Fatalf("detector = %+v", o.Detector)
	}
	if err := o.Detector.Validate(); err != nil {
		t.Fatalf("config from env invalid: %v", err)
	}
}

func TestNewSource(t *testing.T) {
	db, err := bolt.Open(bolt.Config{Path: filepath.Join(t.TempDir(), "p.db")})
	if err != nil {
		t.Fatalf("bolt.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cases := []struct {
		name string
		deps modkit.Deps
		src  string
		want string
		code perr.ErrorCode
	}{
		{"dir", modkit.Deps{}, SourceDir, "dir", 0},
		{"default", modkit.Deps{}, "", "dir", 0},
		{"bolt", modkit.Deps{Bolt: db}, SourceBolt, "bolt", 0},
		{"bolt disabled", modkit.Deps{}, SourceBolt, "", perr.ErrorCodeUnavailable},
		{"pg disabled", modkit.Deps{}, SourcePG, "", perr.ErrorCodeUnavailable},
		{"unknown", modkit.Deps{}, "s3", "", perr.ErrorCodeInvalidArgument},
	}
	for _, c := range cases {
		src, err := NewSource(c.deps, Options{Source: c.src, Dir: t.TempDir()})
		if c.want == "" {
			if !perr.IsCode(err, c.code) {
				t.Fatalf("%s: err = %v", c.name, err)
			}
			continue
		}
		if err != nil || src.Name() != c.want {
			t.Fatalf("%s: src=%v err=%v", c.name, src, err)
		}
	}
}

func TestModule_StartAndRoutes(t *testing.T) {
	m := metrics.New()
	opts := Options{Source: SourceDir, Dir: writeProfiles(t), Admin: true, Detector: FromConfig(config.New()).Detector}
	mod, err := New(modkit.Deps{Metrics: m}, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := mod.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if v := testutil.ToFloat64(m.Languages); v != 2 {
		t.Fatalf("languages gauge = %v", v)
	}

	ports := module.MustPortsOf[domain.FactoryPort](mod)
	if ports.Current() == nil {
		t.Fatalf("factory not published")
	}

	r := phttp.AdaptChi(chi.NewRouter())
	mod.MountRoutes(r)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.Mux().ServeHTTP(rec, req)
		return rec
	}

	if rec := do(http.MethodGet, "/profiles", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"lang":"fr"`) {
		t.Fatalf("list = %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(http.MethodPost, "/profiles/remove", `{"lang":"../en"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad lang = %d", rec.Code)
	}
	if rec := do(http.MethodPost, "/profiles/remove", `{"lang":"fr"}`); rec.Code != http.StatusOK {
		t.Fatalf("remove = %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(http.MethodPost, "/profiles/remove", `{"lang":"en"}`); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("removing the last language = %d", rec.Code)
	}
	escape := `{"name":"../x","freq":{"x":1},"n_words":[1,0,0]}`
	if rec := do(http.MethodPut, "/profiles", escape); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("put with a path as id = %d %s", rec.Code, rec.Body.String())
	}
	body := `{"name":"de","freq":{"d":1,"de":1,"der":1},"n_words":[1,1,1]}`
	if rec := do(http.MethodPut, "/profiles", body); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"languages":2`) {
		t.Fatalf("put = %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(http.MethodPost, "/profiles/reload", ""); rec.Code != http.StatusOK {
		t.Fatalf("reload = %d", rec.Code)
	}
}

func TestModule_ReadOnlyRoutes(t *testing.T) {
	mod, err := New(modkit.Deps{}, Options{Source: SourceDir, Dir: writeProfiles(t), Detector: FromConfig(config.New()).Detector})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := mod.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r := phttp.AdaptChi(chi.NewRouter())
	mod.MountRoutes(r)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profiles/reload", nil))
	if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("admin route mounted without admin: %d", rec.Code)
	}
}

func TestModule_StartEmptyDir(t *testing.T) {
	mod, err := New(modkit.Deps{}, Options{Source: SourceDir, Dir: t.TempDir(), Detector: FromConfig(config.New()).Detector})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := mod.Start(context.Background()); !perr.IsCode(err, perr.ErrorCodeEmptyRegistry) {
		t.Fatalf("Start on empty dir = %v", err)
	}
}
