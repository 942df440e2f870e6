package bolt

import (
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

func TestOpen_CreatesBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profiles.db")

	db, err := Open(Config{Path: path, Buckets: []string{"profiles", "meta"}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range []string{"profiles", "meta"} {
			if tx.Bucket([]byte(b)) == nil {
				t.Fatalf("bucket %q missing", b)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ro, err := Open(Config{Path: path, ReadOnly: true})
	if err != nil {
		t.Fatalf("read-only reopen: %v", err)
	}
	if !ro.IsReadOnly() {
		t.Fatalf("expected read-only handle")
	}
	_ = ro.Close()
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
