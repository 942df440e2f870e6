package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a bounded in-process cache
type LRU struct {
	c *lru.Cache[string, []byte]
}

// NewLRU returns an LRU holding at most size entries
func NewLRU(size int) (*LRU, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &LRU{c: c}, nil
}

func (l *LRU) Get(_ context.Context, key string) ([]byte, bool) { return l.c.Get(key) }

func (l *LRU) Set(_ context.Context, key string, val []byte) { l.c.Add(key, val) }

// Len is the number of cached entries
func (l *LRU) Len() int { return l.c.Len() }

// Purge drops every entry, used when the profile registry is swapped
func (l *LRU) Purge() { l.c.Purge() }
