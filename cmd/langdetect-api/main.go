// @title         langdetect API
// @version       0.1.0
// @description   Language identification over character n-gram profiles

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"langdetect/internal/core/version"
	"langdetect/internal/modkit/repokit"
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/logger"
	"langdetect/internal/platform/metrics"
	phttp "langdetect/internal/platform/net/http"
	"langdetect/internal/platform/store"
	"langdetect/internal/services/api"
)

func main() {
	version.SetService("langdetect-api")
	opt := logger.FromEnv()
	opt.Service = "langdetect-api"
	logger.Init(opt)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// backends are opt in through PG_ENABLED, CH_ENABLED, BOLT_ENABLED and REDIS_ENABLED
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	st, err := store.Open(ctx, store.FromConfig(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when a configured backend does not answer
	gctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	repokit.MustGuard(gctx, st)
	cancel()

	opts := api.Options{
		Config:         root,
		Store:          st,
		Metrics:        metrics.New(),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}
	a, err := api.New(opts)
	if err != nil {
		l.Panic().Err(err).Msg("api.New failed")
	}
	// loads the registry, starts the watcher and the detections sink
	if err := a.Start(ctx); err != nil {
		l.Panic().Err(err).Msg("api start failed")
	}

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)
	a.Mount(srv.Router(), opts)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
