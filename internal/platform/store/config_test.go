package store

import (
	"testing"
	"time"

	"langdetect/internal/platform/config"
	kit "langdetect/internal/platform/testkit"
)

func TestFromConfig(t *testing.T) {
	c := FromConfig(config.New(), "api")
	if c.PG.Enabled || c.CH.Enabled || c.Bolt.Enabled || c.Redis.Enabled {
		t.Fatalf("backends enabled by default: %+v", c)
	}

	t.Setenv("PG_ENABLED", "true")
	t.Setenv("PG_DBURL", "postgres://localhost/langdetect")
	t.Setenv("BOLT_ENABLED", "1")
	t.Setenv("BOLT_BUCKETS", "profiles, extra")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")

	c = FromConfig(config.New(), "api")
	if !c.PG.Enabled || c.PG.URL != "postgres://localhost/langdetect" || c.PG.AppName != "api" || c.PG.PingTimeout != 3*time.Second {
		t.Fatalf("pg = %+v", c.PG)
	}
	if !c.Bolt.Enabled || c.Bolt.Path != "profiles.db" || len(c.Bolt.Buckets) != 2 || c.Bolt.Buckets[1] != "extra" {
		t.Fatalf("bolt = %+v", c.Bolt)
	}
	if !c.Redis.Enabled || c.Redis.DB != 2 || c.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis = %+v", c.Redis)
	}
	if c.CH.Enabled {
		t.Fatalf("ch enabled without CH_ENABLED")
	}
}

func TestFromConfig_MissingURLPanics(t *testing.T) {
	t.Setenv("CH_ENABLED", "true")
	kit.MustPanic(t, func() { FromConfig(config.New(), "api") })
}
