package store

import (
	"context"
	"fmt"
	"time"

	"langdetect/internal/platform/store/bolt"
	chx "langdetect/internal/platform/store/ch"
	"langdetect/internal/platform/store/pg"

	"github.com/redis/go-redis/v9"
)

// pingBackoff is swapped in tests to keep retries fast
var pingBackoff = struct{ start, ceiling time.Duration }{150 * time.Millisecond, 2 * time.Second}

// openPG opens pg and wraps it with our sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) error {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.PG.AppName,
	}, tracer, nil)
	if err != nil {
		return err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	// ping the pool directly so boot retries do not show up as traced queries
	var lastErr error
	backoff := pingBackoff.start
	for range attempts {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()
		if lastErr == nil {
			s.PG = newPGAdapter(p)
			return nil
		}
		s.Log.Warn().Err(lastErr).Dur("backoff", backoff).Msg("postgres not ready")

		select {
		case <-ctx.Done():
			p.Close()
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, pingBackoff.ceiling)
	}

	p.Close()
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config, s *Store) error {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return err
	}
	s.CH = newCHAdapter(c)
	return nil
}

func openBolt(_ context.Context, cfg Config, s *Store) error {
	db, err := bolt.Open(bolt.Config{
		Path:     cfg.Bolt.Path,
		Buckets:  cfg.Bolt.Buckets,
		ReadOnly: cfg.Bolt.ReadOnly,
		Timeout:  cfg.Bolt.Timeout,
	})
	if err != nil {
		return err
	}
	s.Bolt = db
	return nil
}

func openRedis(ctx context.Context, cfg Config, s *Store) error {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	s.Redis = c
	return nil
}
