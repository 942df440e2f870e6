// Package modkit provides module wiring and core deps
package modkit

import (
	"langdetect/internal/modkit/repokit"
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/logger"
	"langdetect/internal/platform/metrics"
	"langdetect/internal/platform/store"

	"github.com/redis/go-redis/v9"
	"go.etcd.io/bbolt"
)

// Deps holds the shared dependencies handed to every module
// backends left nil are disabled; modules must nil check them
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	CH      store.Clickhouse
	Bolt    *bbolt.DB
	Redis   *redis.Client
	Metrics *metrics.Metrics
}

// FromStore copies the opened backends of st into Deps
func FromStore(st *store.Store, cfg config.Conf, m *metrics.Metrics) Deps {
	d := Deps{Cfg: cfg, Metrics: m, Log: *logger.Nop()}
	if st == nil {
		return d
	}
	d.Log = st.Log
	d.PG = st.PG
	d.CH = st.CH
	d.Bolt = st.Bolt
	d.Redis = st.Redis
	return d
}
