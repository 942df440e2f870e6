package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"langdetect/internal/core/detector"
	"langdetect/internal/modkit"
	phttp "langdetect/internal/platform/net/http"
	kit "langdetect/internal/platform/testkit"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type noFactory struct{}

func (noFactory) Current() *detector.Factory { return nil }

func TestModule_Routes(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	m := New(modkit.Deps{Redis: rdb}, modkit.WithPorts(noFactory{}))
	if m.Name() != "meta" || m.Prefix() != "/meta" || m.Ports() != nil {
		t.Fatalf("module = %s %s", m.Name(), m.Prefix())
	}
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ready = %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), `"name":"redis","status":"ok"`)
	kit.MustContain(t, rec.Body.String(), "no profiles loaded")

	mr.Close()
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	kit.MustContain(t, rec.Body.String(), `"name":"redis","status":"fail"`)
}
