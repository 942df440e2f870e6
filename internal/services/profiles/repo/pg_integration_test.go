package repo

import (
	"context"
	"testing"

	"langdetect/internal/platform/store"
	"langdetect/internal/platform/store/pg/pgtest"

	"github.com/rs/zerolog"
)

func TestPG_Integration(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: dsn}}, store.WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	r := NewPG(st.PG)
	if err := r.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := r.Migrate(ctx); err != nil {
		t.Fatalf("Migrate is not idempotent: %v", err)
	}
	exerciseWriter(t, r)
}
