package store

import (
	"time"

	"langdetect/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	PG    PGConfig
	CH    CHConfig
	Bolt  BoltConfig
	Redis RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	AppName     string

	// boot guard: ping attempts with exponential backoff, each bounded by PingTimeout
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// BoltConfig configures the embedded bbolt file
type BoltConfig struct {
	Enabled  bool
	Path     string
	Buckets  []string
	ReadOnly bool
	Timeout  time.Duration // file lock wait, default 1s
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// FromConfig reads PG_*, CH_*, BOLT_* and REDIS_* settings; every backend is off
// unless its *_ENABLED key is set, and an enabled backend must name its target
func FromConfig(cfg config.Conf, client string) Config {
	var c Config

	if pg := cfg.Prefix("PG_"); pg.MayBool("ENABLED", false) {
		c.PG = PGConfig{
			Enabled:        true,
			URL:            pg.MustString("DBURL"),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			AppName:        client,
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		}
	}
	if ch := cfg.Prefix("CH_"); ch.MayBool("ENABLED", false) {
		c.CH = CHConfig{
			Enabled:    true,
			URL:        ch.MustString("DBURL"),
			ClientName: "langdetect",
			ClientTag:  client,
		}
	}
	if b := cfg.Prefix("BOLT_"); b.MayBool("ENABLED", false) {
		c.Bolt = BoltConfig{
			Enabled:  true,
			Path:     b.MayString("PATH", "profiles.db"),
			Buckets:  b.MayCSV("BUCKETS", nil),
			ReadOnly: b.MayBool("READ_ONLY", false),
			Timeout:  b.MayDuration("TIMEOUT", time.Second),
		}
	}
	if r := cfg.Prefix("REDIS_"); r.MayBool("ENABLED", false) {
		c.Redis = RedisConfig{
			Enabled:  true,
			Addr:     r.MayString("ADDR", "localhost:6379"),
			Password: r.MayString("PASSWORD", ""),
			DB:       r.MayInt("DB", 0),
		}
	}
	return c
}
