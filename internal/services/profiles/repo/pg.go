package repo

import (
	"context"

	"langdetect/internal/core/profile"
	"langdetect/internal/modkit/repokit"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/platform/store"

	"github.com/goccy/go-json"
)

// Schema creates the profile table, safe to run on every start
const Schema = `
CREATE TABLE IF NOT EXISTS lang_profiles (
	lang       text PRIMARY KEY,
	n_words    bigint[] NOT NULL CHECK (cardinality(n_words) = 3),
	freq       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

const (
	sqlLoad = `SELECT lang, n_words, freq FROM lang_profiles ORDER BY lang`

	sqlUpsert = `
INSERT INTO lang_profiles (lang, n_words, freq, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (lang) DO UPDATE
SET n_words = EXCLUDED.n_words, freq = EXCLUDED.freq, updated_at = now()`

	sqlDelete = `DELETE FROM lang_profiles WHERE lang = $1`
)

// stmts are the write statements bound to the pool or a tx
type stmts struct{ q repokit.Queryer }

var bindStmts = repokit.BindFunc[stmts](func(q repokit.Queryer) stmts { return stmts{q: q} })

func (s stmts) upsert(ctx context.Context, lang string, totals []int64, freq []byte) error {
	return store.ExecOne(ctx, s.q, sqlUpsert, lang, totals, string(freq))
}

func (s stmts) delete(ctx context.Context, lang string) error {
	return store.ExecOne(ctx, s.q, sqlDelete, lang)
}

// PG stores profiles in postgres, one row per language
type PG struct {
	db repokit.TxRunner
}

// NewPG wraps db; writes run with a statement timeout
func NewPG(db repokit.TxRunner) *PG {
	return &PG{db: repokit.WithBeginHooks(db, repokit.StatementTimeout("30s"))}
}

// Name implements domain.Source
func (r *PG) Name() string { return "pg" }

// Migrate creates the table when missing
func (r *PG) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, Schema)
	return perr.FromPostgresf(err, "profiles: migrate")
}

func scanProfile(row store.Row) (*profile.Profile, error) {
	var (
		lang   string
		totals []int64
		freq   []byte
	)
	if err := row.Scan(&lang, &totals, &freq); err != nil {
		return nil, err
	}
	p := profile.New(lang)
	if err := json.Unmarshal(freq, &p.Counts); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "profiles: freq of %s", lang)
	}
	for i := range min(len(totals), profile.MaxOrder) {
		p.Totals[i] = int(totals[i])
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads every stored profile ordered by language
func (r *PG) Load(ctx context.Context) ([]*profile.Profile, error) {
	ps, err := store.Many(ctx, r.db, scanProfile, sqlLoad)
	if err != nil {
		if _, ok := perr.As(err); ok {
			return nil, err
		}
		return nil, perr.FromPostgresf(err, "profiles: load")
	}
	return ps, nil
}

// Upsert inserts or replaces p inside a transaction
func (r *PG) Upsert(ctx context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	freq, err := json.Marshal(p.Counts)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "profiles: encode %s", p.Lang)
	}
	totals := make([]int64, profile.MaxOrder)
	for i, t := range p.Totals {
		totals[i] = int64(t)
	}
	err = repokit.WithTx(ctx, r.db, func(q repokit.Queryer) error {
		return repokit.MustBind[stmts](bindStmts, q).upsert(ctx, p.Lang, totals, freq)
	})
	return perr.FromPostgresf(err, "profiles: upsert %s", p.Lang)
}

// Delete removes lang; a missing row is perr.ErrNotFound
func (r *PG) Delete(ctx context.Context, lang string) error {
	err := repokit.WithTx(ctx, r.db, func(q repokit.Queryer) error {
		return repokit.MustBind[stmts](bindStmts, q).delete(ctx, lang)
	})
	if err == nil || perr.IsCode(err, perr.ErrorCodeNotFound) {
		return err
	}
	return perr.FromPostgresf(err, "profiles: delete %s", lang)
}
