package service

import (
	"context"
	"path/filepath"
	"time"

	"langdetect/internal/platform/logger"
	"langdetect/internal/services/profiles/repo"

	"github.com/fsnotify/fsnotify"
)

const reloadOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// DefaultDebounce is used when Watch gets a non-positive debounce
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads the registry whenever a profile file in dir changes
// bursts of events within debounce collapse into one reload; it blocks until ctx ends
func (s *Svc) Watch(ctx context.Context, dir string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}

	log := logger.Named("profile-watcher")
	log.Info().Str("dir", dir).Dur("debounce", debounce).Msg("watching profiles")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(reloadOps) || !repo.IsProfileFile(filepath.Base(ev.Name)) {
				continue
			}
			log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("profile changed")
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			// failures are logged by Reload and keep the previous registry
			_ = s.Reload(ctx)
		}
	}
}
