// Package repo implements the profile sources: a directory, postgres and bbolt
package repo

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"langdetect/internal/core/profile"
	perr "langdetect/internal/platform/errors"
)

// Dir reads <lang>.json files from a directory
type Dir struct {
	Path string
}

// NewDir returns a directory source rooted at path
func NewDir(path string) *Dir { return &Dir{Path: path} }

// Name implements domain.Source
func (d *Dir) Name() string { return "dir" }

// Load reads every *.json file in lexical order
// a single malformed file fails the whole load
func (d *Dir) Load(ctx context.Context) ([]*profile.Profile, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "profiles: read dir %s", d.Path)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && IsProfileFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	out := make([]*profile.Profile, 0, len(names))
	for _, n := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := profile.ReadFile(filepath.Join(d.Path, n))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Upsert writes <lang>.json, replacing any previous file
func (d *Dir) Upsert(_ context.Context, p *profile.Profile) error {
	if err := profile.CheckLang(p.Lang); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := p.WriteFile(d.Path)
	return err
}

// Delete removes <lang>.json; a missing file is perr.ErrNotFound
func (d *Dir) Delete(_ context.Context, lang string) error {
	if err := profile.CheckLang(lang); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(d.Path, lang+".json"))
	if os.IsNotExist(err) {
		return perr.ErrNotFound
	}
	return err
}

// IsProfileFile reports whether name looks like a stored profile, skipping editor temp files
func IsProfileFile(name string) bool {
	return strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, ".")
}
