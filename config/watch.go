// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cactuskit/cactus/internal/logger"
)

// watchDebounce collapses the bursts of events editors produce when
// saving.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the file at path whenever it changes and sends every
// valid configuration on the returned channel. Invalid files are logged
// and skipped. The channel is closed when ctx is done.
//
// The parent directory is watched rather than the file, so that editors
// replacing the file on save are followed.
func Watch(ctx context.Context, path string, log *logger.Logger) (<-chan *Config, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		var (
			timer   *time.Timer
			pending <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				pending = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Error(err, "config watch", "path", path)
			case <-pending:
				pending = nil
				cfg, err := Load(path)
				if err != nil {
					log.Error(err, "config reload", "path", path)
					continue
				}
				log.Info("config reloaded", "path", path)
				// Keep only the newest configuration.
				select {
				case <-out:
				default:
				}
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
