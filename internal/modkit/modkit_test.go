package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/metrics"
	phttp "langdetect/internal/platform/net/http"
	"langdetect/internal/platform/store"

	"github.com/go-chi/chi/v5"
)

func newRouter() phttp.Router { return phttp.AdaptChi(chi.NewRouter()) }

func get(r phttp.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

type stub struct{ built Built }

func (s stub) MountRoutes(r httpkit.Router) {
	s.built.Mount(r, func(sub httpkit.Router) { sub.Get("/own", ok) })
}
func (s stub) Ports() any   { return s.built.Ports }
func (s stub) Name() string { return s.built.Name }

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	r := newRouter()
	if b.Subrouter(r) != r {
		t.Fatalf("default subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_OptionsAndMount(t *testing.T) {
	var order []string
	tag := func(s string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, s)
				next.ServeHTTP(w, r)
			})
		}
	}
	subCalls := 0
	var b Builder = func(_ Deps, opts ...Option) Module {
		return stub{built: Build(opts...)}
	}
	m := b(Deps{},
		WithName("detect"),
		WithPrefix("/detect"),
		WithMiddlewares(tag("a")),
		WithMiddlewares(tag("b")),
		WithPorts(42),
		WithSubrouter(func(r httpkit.Router) httpkit.Router { subCalls++; return r }),
		WithRegister(func(r httpkit.Router) { r.Get("/extra", ok) }),
	)
	if m.Name() != "detect" || m.Ports() != 42 {
		t.Fatalf("name=%q ports=%v", m.Name(), m.Ports())
	}

	r := newRouter()
	MountAll(r, m, nil)
	if subCalls != 1 {
		t.Fatalf("subrouter calls = %d", subCalls)
	}
	for _, p := range []string{"/detect/own", "/detect/extra"} {
		if rec := get(r, p); rec.Code != http.StatusOK {
			t.Fatalf("%s = %d", p, rec.Code)
		}
	}
	if len(order) != 4 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("middleware order = %v", order)
	}
}

func TestFromStore(t *testing.T) {
	m := metrics.New()
	d := FromStore(nil, config.New(), m)
	if d.Metrics != m || d.PG != nil || d.Redis != nil {
		t.Fatalf("nil store deps = %+v", d)
	}
	// a nil store still yields a usable logger
	d.Log.Info().Msg("discarded")
	st := &store.Store{}
	d = FromStore(st, config.New(), nil)
	if d.CH != nil || d.Bolt != nil {
		t.Fatalf("empty store should leave backends nil")
	}
}
