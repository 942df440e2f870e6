package profile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	perr "langdetect/internal/platform/errors"
)

// Parse decodes one profile from its JSON form and validates it
// shape: {"name":"en","freq":{"a":3,"ab":1},"n_words":[3,1,0]}
func Parse(b []byte) (*Profile, error) {
	return Decode(bytes.NewReader(b))
}

// Decode reads one profile from r and validates it
func Decode(r io.Reader) (*Profile, error) {
	var p Profile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "profile: decode")
	}
	if p.Counts == nil {
		p.Counts = map[string]int{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadFile loads and validates the profile stored at path
func ReadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "profile: open %s", filepath.Base(path))
	}
	defer f.Close()
	p, err := Decode(f)
	if err != nil {
		return nil, perr.WithOp(err, "profile.ReadFile "+filepath.Base(path))
	}
	return p, nil
}

// Encode writes p as JSON to w
func (p *Profile) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "profile %s: encode", p.Lang)
	}
	return nil
}

// WriteFile stores p as <dir>/<lang>.json
func (p *Profile) WriteFile(dir string) (string, error) {
	if err := CheckLang(p.Lang); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return "", err
	}
	path := filepath.Join(dir, p.Lang+".json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "profile %s: write %s", p.Lang, path)
	}
	return path, nil
}
