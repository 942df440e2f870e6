// Package cache holds byte caches for repeated detections
//
// Values are opaque; callers own the encoding. A miss and a backend failure
// look the same to the caller, failures are logged and never surfaced.
package cache

import (
	"context"
)

// Cache is a best effort key value store
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
}

// Nop never hits
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Nop) Set(context.Context, string, []byte)        {}

// tiered reads front to back and backfills the tiers that missed
type tiered []Cache

// Tiered chains caches, typically a process LRU in front of redis
// nil tiers are skipped; no tiers yields Nop
func Tiered(tiers ...Cache) Cache {
	var t tiered
	for _, c := range tiers {
		if c != nil {
			t = append(t, c)
		}
	}
	switch len(t) {
	case 0:
		return Nop{}
	case 1:
		return t[0]
	}
	return t
}

func (t tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, c := range t {
		if v, ok := c.Get(ctx, key); ok {
			for _, front := range t[:i] {
				front.Set(ctx, key, v)
			}
			return v, true
		}
	}
	return nil, false
}

func (t tiered) Set(ctx context.Context, key string, val []byte) {
	for _, c := range t {
		c.Set(ctx, key, val)
	}
}
