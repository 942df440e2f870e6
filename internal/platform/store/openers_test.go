package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	kit "langdetect/internal/platform/testkit"
)

// 127.0.0.1:1 is closed everywhere, so pings fail fast
const closedPG = "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1"

func fastBackoff(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &pingBackoff, struct{ start, ceiling time.Duration }{time.Millisecond, 2 * time.Millisecond})
}

func TestOpenPG_GivesUpAfterRetries(t *testing.T) {
	fastBackoff(t)
	s := &Store{}
	err := openPG(context.Background(), Config{PG: PGConfig{
		URL:            closedPG,
		ConnectRetries: 2,
		PingTimeout:    500 * time.Millisecond,
	}}, s)
	if err == nil || !strings.Contains(err.Error(), "after 2 attempts") {
		t.Fatalf("err = %v", err)
	}
	if s.PG != nil {
		t.Fatalf("PG must stay nil when ping never succeeds")
	}
}

func TestOpenPG_ParentCanceled(t *testing.T) {
	fastBackoff(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := openPG(ctx, Config{PG: PGConfig{URL: closedPG, ConnectRetries: 50}}, &Store{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
