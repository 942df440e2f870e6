package module

import (
	"time"

	"langdetect/internal/platform/config"
	"langdetect/internal/services/api/detect/repo"
)

// Options size the result cache and the detections sink
type Options struct {
	CacheSize   int
	CacheTTL    time.Duration
	RedisPrefix string

	Sink        bool
	SinkMigrate bool
	SinkOptions repo.SinkOptions
}

// FromConfig reads DETECT_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("DETECT_")
	return Options{
		CacheSize:   c.MayInt("CACHE_SIZE", 4096),
		CacheTTL:    c.MayDuration("CACHE_TTL", time.Hour),
		RedisPrefix: c.MayString("REDIS_PREFIX", "langdetect:detect:"),
		Sink:        c.MayBool("SINK", true),
		SinkMigrate: c.MayBool("SINK_MIGRATE", true),
		SinkOptions: repo.SinkOptions{
			Buffer: c.MayInt("SINK_BUFFER", 4096),
			Batch:  c.MayInt("SINK_BATCH", 512),
			Every:  c.MayDuration("SINK_EVERY", 2*time.Second),
		},
	}
}
