package cache

import (
	"context"
	"errors"
	"time"

	"langdetect/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Redis shares cached results between api replicas
type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis wraps rdb; keys are stored as prefix+key and expire after ttl
// a zero ttl keeps entries until evicted by redis
func NewRedis(rdb *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if r == nil || r.rdb == nil {
		return nil, false
	}
	bs, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.C(ctx).Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return nil, false
	}
	return bs, len(bs) > 0
}

func (r *Redis) Set(ctx context.Context, key string, val []byte) {
	if r == nil || r.rdb == nil {
		return
	}
	if err := r.rdb.Set(ctx, r.prefix+key, val, r.ttl).Err(); err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
