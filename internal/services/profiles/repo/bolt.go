package repo

import (
	"bytes"
	"context"

	"langdetect/internal/core/profile"
	perr "langdetect/internal/platform/errors"

	"go.etcd.io/bbolt"
)

// Bucket is the bbolt bucket holding one JSON profile per language key
const Bucket = "profiles"

// Bolt stores profiles in an embedded bbolt file
type Bolt struct {
	db     *bbolt.DB
	bucket []byte
}

// NewBolt wraps db, the bucket is created on first write
func NewBolt(db *bbolt.DB) *Bolt {
	return &Bolt{db: db, bucket: []byte(Bucket)}
}

// Name implements domain.Source
func (b *Bolt) Name() string { return "bolt" }

// Load decodes every value of the bucket in key order
func (b *Bolt) Load(ctx context.Context) ([]*profile.Profile, error) {
	var out []*profile.Profile
	err := b.db.View(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(b.bucket)
		if bk == nil {
			return nil
		}
		return bk.ForEach(func(k, v []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := profile.Decode(bytes.NewReader(v))
			if err != nil {
				return perr.WithOp(err, "profiles.bolt "+string(k))
			}
			out = append(out, p)
			return nil
		})
	})
	return out, err
}

// Upsert stores p under its language id
func (b *Bolt) Upsert(_ context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists(b.bucket)
		if err != nil {
			return err
		}
		return bk.Put([]byte(p.Lang), buf.Bytes())
	})
}

// Delete removes lang; a missing key is perr.ErrNotFound
func (b *Bolt) Delete(_ context.Context, lang string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(b.bucket)
		if bk == nil || bk.Get([]byte(lang)) == nil {
			return perr.ErrNotFound
		}
		return bk.Delete([]byte(lang))
	})
}
