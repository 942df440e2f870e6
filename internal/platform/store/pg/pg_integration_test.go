package pg

import (
	"context"
	"testing"
	"time"

	"langdetect/internal/platform/store/pg/pgtest"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ApplicationName_Integration(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	const appName = "langdetect-pg-integration"
	p, err := Open(ctx, Config{URL: dsn, MaxConns: 2}, nil, func(pc *pgxpool.Config) {
		pc.ConnConfig.RuntimeParams["application_name"] = appName
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	var got string
	if err := p.Pool.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&got); err != nil {
		t.Fatalf("query: %v", err)
	}
	if got != appName {
		t.Fatalf("application_name = %q, want %q", got, appName)
	}
}
