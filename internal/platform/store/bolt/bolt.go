// Package bolt opens bbolt files with their buckets in place
package bolt

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

// Config configures a bbolt file
type Config struct {
	Path     string
	Buckets  []string
	ReadOnly bool
	Timeout  time.Duration
}

// Open opens (or creates) the file and ensures every bucket exists
// read-only opens skip bucket creation
func Open(cfg Config) (*bbolt.DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("bolt: empty path")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}
	if !cfg.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: timeout, ReadOnly: cfg.ReadOnly})
	if err != nil {
		return nil, err
	}
	if cfg.ReadOnly || len(cfg.Buckets) == 0 {
		return db, nil
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range cfg.Buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
