package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/profile"
	"langdetect/internal/core/registry"
	perr "langdetect/internal/platform/errors"
	kit "langdetect/internal/platform/testkit"
	"langdetect/internal/services/profiles/repo"
)

func trained(lang, text string) *profile.Profile {
	p := profile.New(lang)
	p.Update(text)
	return p
}

// memSource is a writable in-memory source
type memSource struct {
	mu  sync.Mutex
	ps  map[string]*profile.Profile
	err error
}

func newMem(ps ...*profile.Profile) *memSource {
	m := &memSource{ps: map[string]*profile.Profile{}}
	for _, p := range ps {
		m.ps[p.Lang] = p
	}
	return m
}

func (m *memSource) Name() string { return "mem" }

func (m *memSource) Load(context.Context) ([]*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*profile.Profile, 0, len(m.ps))
	for _, l := range []string{"de", "en", "fr", "ja"} {
		if p, ok := m.ps[l]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memSource) Upsert(_ context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ps[p.Lang] = p
	return nil
}

func (m *memSource) Delete(_ context.Context, lang string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ps[lang]; !ok {
		return perr.ErrNotFound
	}
	delete(m.ps, lang)
	return nil
}

func en() *profile.Profile { return trained("en", "the cat sat on the mat and the dog ate the bone") }
func fr() *profile.Profile { return trained("fr", "le chat est sur la table et le chien mange") }

func newSvc(src *memSource) (*Svc, *[]int) {
	var seen []int
	s := New(src, Config{
		Detector: detector.DefaultConfig().WithSeed(7),
		OnReload: func(n int, err error) {
			if err != nil {
				n = -1
			}
			seen = append(seen, n)
		},
	})
	return s, &seen
}

func TestLoadRegistry(t *testing.T) {
	ctx := context.Background()
	reg, err := LoadRegistry(ctx, newMem(en(), fr()))
	if err != nil || reg.Len() != 2 {
		t.Fatalf("LoadRegistry = %v, %v", reg, err)
	}
	if _, err := LoadRegistry(ctx, newMem()); !errors.Is(err, registry.ErrEmpty) {
		t.Fatalf("empty source = %v", err)
	}
	boom := errors.New("boom")
	if _, err := LoadRegistry(ctx, &memSource{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("source error = %v", err)
	}
}

func TestReload_KeepsPreviousOnFailure(t *testing.T) {
	ctx := context.Background()
	src := newMem(en(), fr())
	s, seen := newSvc(src)

	if s.Current() != nil {
		t.Fatalf("nothing should be active before the first load")
	}
	if _, err := s.List(ctx); !errors.Is(err, registry.ErrEmpty) {
		t.Fatalf("List before load = %v", err)
	}
	if err := s.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	first := s.Current()
	if lang, err := first.Detect("the dog and the cat"); err != nil || lang != "en" {
		t.Fatalf("Detect = %q, %v", lang, err)
	}

	src.err = errors.New("disk gone")
	if err := s.Reload(ctx); err == nil {
		t.Fatalf("expected reload failure")
	}
	if s.Current() != first {
		t.Fatalf("failed reload replaced the active factory")
	}
	if len(*seen) != 2 || (*seen)[0] != 2 || (*seen)[1] != -1 {
		t.Fatalf("observed reloads = %v", *seen)
	}
}

func TestPutAndRemove(t *testing.T) {
	ctx := context.Background()
	src := newMem(en(), fr())
	s, _ := newSvc(src)
	if err := s.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	resp, err := s.Put(ctx, trained("de", "der hund und die katze sind im haus"))
	if err != nil || resp.Languages != 3 {
		t.Fatalf("Put = %+v, %v", resp, err)
	}
	if _, err := s.Put(ctx, trained("../x", "der hund")); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("Put with a path as id = %v", err)
	}
	if _, ok := src.ps["../x"]; ok {
		t.Fatalf("bad id reached the source")
	}

	resp, err = s.Remove(ctx, "fr")
	if err != nil || resp.Languages != 2 {
		t.Fatalf("Remove = %+v, %v", resp, err)
	}
	if _, ok := src.ps["fr"]; ok {
		t.Fatalf("fr should be deleted from the source")
	}
	list, _ := s.List(ctx)
	if list.Source != "mem" || len(list.Languages) != 2 || list.Languages[0].Lang != "de" {
		t.Fatalf("List = %+v", list)
	}

	if _, err := s.Remove(ctx, "fr"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("unknown lang = %v", err)
	}
	if _, err := s.Remove(ctx, "de"); err != nil {
		t.Fatalf("Remove de: %v", err)
	}
	if _, err := s.Remove(ctx, "en"); !errors.Is(err, registry.ErrEmpty) {
		t.Fatalf("removing the last language = %v", err)
	}
}

func TestPut_ReadOnlySource(t *testing.T) {
	s := New(readOnlySource{}, Config{Detector: detector.DefaultConfig()})
	if _, err := s.Put(context.Background(), en()); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("Put on read only = %v", err)
	}
}

type readOnlySource struct{}

func (readOnlySource) Name() string                                     { return "ro" }
func (readOnlySource) Load(context.Context) ([]*profile.Profile, error) { return nil, nil }

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	if _, err := en().WriteFile(dir); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s := New(repo.NewDir(dir), Config{Detector: detector.DefaultConfig()})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, dir, 20*time.Millisecond) }()

	// the watcher registers asynchronously; rewrite now and then until it notices
	polls := 0
	kit.Eventually(t, 5*time.Second, func() bool {
		if polls%20 == 0 {
			if _, err := fr().WriteFile(dir); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
		}
		polls++
		return s.Current().Registry().Len() == 2
	})

	kit.WriteFiles(t, dir, map[string]string{"broken.json": "{"})
	time.Sleep(100 * time.Millisecond)
	if s.Current().Registry().Len() != 2 {
		t.Fatalf("broken file should keep the previous registry")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Watch returned %v", err)
	}
}
