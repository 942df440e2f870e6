package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"langdetect/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recTracer struct {
	mu     sync.Mutex
	events []pg.QueryEvent
}

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

// pgxRows serves one string column
type pgxRows struct {
	pgx.Rows
	vals   []string
	idx    int
	closed bool
}

func (r *pgxRows) Next() bool { r.idx++; return r.idx <= len(r.vals) }
func (r *pgxRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.idx-1]
	return nil
}
func (r *pgxRows) Err() error { return nil }
func (r *pgxRows) Close()     { r.closed = true }
func (r *pgxRows) FieldDescriptions() []pgconn.FieldDescription {
	return []pgconn.FieldDescription{{Name: "lang"}}
}

// pgxTx satisfies pgx.Tx; only the query surface and commit/rollback are used
type pgxTx struct {
	pgx.Tx
	execErr    error
	rowErr     error
	committed  bool
	rolledBack bool
}

func (f *pgxTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}
func (f *pgxTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return &pgxRows{vals: []string{"en", "fr"}}, nil
}
func (f *pgxTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return scanFunc(func(dest ...any) error {
		if f.rowErr != nil {
			return f.rowErr
		}
		*(dest[0].(*int)) = 1
		return nil
	})
}
func (f *pgxTx) Commit(context.Context) error   { f.committed = true; return nil }
func (f *pgxTx) Rollback(context.Context) error { f.rolledBack = true; return nil }

func TestTraced_EmitsPerStatement(t *testing.T) {
	ctx := context.Background()
	tr := &recTracer{}
	q := traced{q: &pgxTx{}, tracer: tr, slowUS: 0}

	ct, err := q.Exec(ctx, "INSERT INTO lang_profiles VALUES ($1)", "en")
	if err != nil || ct.RowsAffected() != 1 || ct.String() != "INSERT 0 1" {
		t.Fatalf("Exec = %v, %v", ct, err)
	}

	rs, err := q.Query(ctx, "SELECT lang FROM lang_profiles")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if cols := rs.Columns(); len(cols) != 1 || cols[0] != "lang" {
		t.Fatalf("Columns = %v", cols)
	}
	var got []string
	for rs.Next() {
		var s string
		if err := rs.Scan(&s); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		got = append(got, s)
	}
	rs.Close()
	if len(got) != 2 || got[0] != "en" || rs.Err() != nil {
		t.Fatalf("rows = %v", got)
	}

	var one int
	if err := q.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil || one != 1 {
		t.Fatalf("QueryRow = %d, %v", one, err)
	}

	if len(tr.events) != 3 {
		t.Fatalf("events = %d, want 3", len(tr.events))
	}
	for _, ev := range tr.events {
		if !ev.Slow {
			t.Fatalf("slowUS=0 should mark every event slow: %+v", ev)
		}
	}
	if tr.events[0].SQL != "INSERT INTO lang_profiles VALUES ($1)" {
		t.Fatalf("sql = %q", tr.events[0].SQL)
	}
}

func TestTraced_ScanErrorReachesTracer(t *testing.T) {
	tr := &recTracer{}
	boom := errors.New("no rows")
	q := traced{q: &pgxTx{rowErr: boom}, tracer: tr, slowUS: -1}

	var one int
	if err := q.QueryRow(context.Background(), "SELECT 1").Scan(&one); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if len(tr.events) != 1 || !errors.Is(tr.events[0].Err, boom) || tr.events[0].Slow {
		t.Fatalf("events = %+v", tr.events)
	}
}

func TestTraced_NilTracer(t *testing.T) {
	q := traced{q: &pgxTx{}}
	if _, err := q.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
}

func TestRunTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	tr := &recTracer{}

	ok := &pgxTx{}
	err := runTx(ctx, ok, traced{tracer: tr}, func(q RowQuerier) error {
		_, err := q.Exec(ctx, "DELETE FROM lang_profiles WHERE lang = $1", "xx")
		return err
	})
	if err != nil || !ok.committed || ok.rolledBack {
		t.Fatalf("commit path: err=%v committed=%v rolledBack=%v", err, ok.committed, ok.rolledBack)
	}
	if len(tr.events) != 1 {
		t.Fatalf("tx statements should be traced, got %d", len(tr.events))
	}

	boom := errors.New("exec failed")
	bad := &pgxTx{execErr: boom}
	err = runTx(ctx, bad, traced{}, func(q RowQuerier) error {
		_, err := q.Exec(ctx, "UPDATE x")
		return err
	})
	if !errors.Is(err, boom) || bad.committed || !bad.rolledBack {
		t.Fatalf("rollback path: err=%v committed=%v rolledBack=%v", err, bad.committed, bad.rolledBack)
	}
}

func TestPGAdapter_NilPing(t *testing.T) {
	var a *pgAdapter
	if err := a.Ping(context.Background()); err == nil {
		t.Fatalf("nil adapter should fail ping")
	}
}
