package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/vpwatch/internal/config"
	"github.com/alexisbeaulieu97/vpwatch/internal/debounce"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
)

// reloadDelay absorbs the write bursts editors produce when saving.
const reloadDelay = 100 * time.Millisecond

// WatchConfig returns a Runner that reloads path whenever it changes and
// hands every valid configuration to apply. Invalid edits are logged and
// ignored so the session keeps its last good settings.
//
// The parent directory is watched rather than the file itself, since
// editors commonly save by renaming a temporary file over the original.
func WatchConfig(path string, log *logger.Logger, apply func(*config.Config)) Runner {
	return func(ctx context.Context) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create config watcher: %w", err)
		}
		defer watcher.Close()

		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch config directory: %w", err)
		}

		log = log.With("config", abs)
		reloader := debounce.New(reloadDelay)
		defer reloader.Cancel()

		reload := func() {
			cfg, err := config.Load(abs)
			if err != nil {
				log.Error(err, "config reload rejected")
				return
			}
			log.Info("config reloaded")
			apply(cfg)
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					reloader.Trigger(reload)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Error(err, "config watcher error")
			}
		}
	}
}
