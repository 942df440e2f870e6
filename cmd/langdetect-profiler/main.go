// Command langdetect-profiler trains language profiles from a corpus manifest
//
//	languages:
//	  - lang: en
//	    files: [corpus/en/wiki.txt, corpus/en/news.txt]
//	  - lang: fr
//	    files: [corpus/fr/wiki.txt]
//
// Files are read line by line, relative to the manifest. Each profile is
// pruned with OmitLessFreq, written to -out as <lang>.json and, with -store,
// upserted to postgres or bbolt as well.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"langdetect/internal/core/profile"
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/logger"
	"langdetect/internal/platform/store"
	"langdetect/internal/services/profiles/domain"
	"langdetect/internal/services/profiles/repo"

	"gopkg.in/yaml.v3"
)

type manifest struct {
	Languages []struct {
		Lang  string   `yaml:"lang"`
		Files []string `yaml:"files"`
	} `yaml:"languages"`
}

func main() {
	logger.Init(logger.FromEnv())
	if err := run(context.Background(), os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("langdetect-profiler", flag.ContinueOnError)
	var (
		manifestPath = fs.String("manifest", "corpus.yaml", "YAML corpus manifest")
		out          = fs.String("out", "profiles", "output directory for <lang>.json")
		target       = fs.String("store", "", "also upsert to pg or bolt (PG_* / BOLT_* env)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := readManifest(*manifestPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	w, closeFn, err := openWriter(ctx, *target)
	if err != nil {
		return err
	}
	defer closeFn()

	log := logger.Named("profiler")
	base := filepath.Dir(*manifestPath)
	for _, l := range m.Languages {
		p, err := train(l.Lang, base, l.Files)
		if err != nil {
			return err
		}
		path, err := p.WriteFile(*out)
		if err != nil {
			return err
		}
		if w != nil {
			if err := w.Upsert(ctx, p); err != nil {
				return fmt.Errorf("upsert %s: %w", p.Lang, err)
			}
		}
		log.Info().Str("lang", p.Lang).Int("ngrams", p.Len()).Str("path", path).Msg("profile written")
	}
	return nil
}

func readManifest(path string) (manifest, error) {
	var m manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(m.Languages) == 0 {
		return m, errors.New("manifest lists no languages")
	}
	for _, l := range m.Languages {
		if l.Lang == "" || len(l.Files) == 0 {
			return m, fmt.Errorf("manifest entry %q needs a lang and at least one file", l.Lang)
		}
	}
	return m, nil
}

// train feeds every line of files into a fresh profile, then prunes it
func train(lang, base string, files []string) (*profile.Profile, error) {
	p := profile.New(lang)
	for _, f := range files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(base, f)
		}
		if err := feed(p, f); err != nil {
			return nil, err
		}
	}
	p.OmitLessFreq()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", lang, err)
	}
	return p, nil
}

func feed(p *profile.Profile, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return feedLines(p, f)
}

func feedLines(p *profile.Profile, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		p.Update(sc.Text())
	}
	return sc.Err()
}

// openWriter opens the store named by target, nil when target is empty
func openWriter(ctx context.Context, target string) (domain.Writer, func(), error) {
	noop := func() {}
	root := config.New()

	var cfg store.Config
	switch target {
	case "":
		return nil, noop, nil
	case "pg":
		cfg.PG = store.FromConfig(root, "profiler").PG
		if !cfg.PG.Enabled {
			return nil, noop, errors.New("-store pg needs PG_ENABLED and PG_DBURL")
		}
	case "bolt":
		cfg.Bolt = store.BoltConfig{
			Enabled: true,
			Path:    root.Prefix("BOLT_").MayString("PATH", "profiles.db"),
			Buckets: []string{repo.Bucket},
		}
	default:
		return nil, noop, fmt.Errorf("unknown -store %q", target)
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*logger.Get()))
	if err != nil {
		return nil, noop, err
	}
	closeFn := func() { _ = st.Close(context.Background()) }
	if target == "bolt" {
		return repo.NewBolt(st.Bolt), closeFn, nil
	}
	pg := repo.NewPG(st.PG)
	if err := pg.Migrate(ctx); err != nil {
		closeFn()
		return nil, noop, err
	}
	return pg, closeFn, nil
}
