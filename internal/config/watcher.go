// ABOUTME: Polling settings watcher that reloads Settings when a settings file changes
// ABOUTME: Compares file mtimes at a fixed interval; Run blocks until its context is done

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling interval used when none is set.
const DefaultWatchInterval = time.Second

// Watcher reloads project and global settings whenever one of the files
// appears, disappears, or changes mtime.
type Watcher struct {
	projectRoot string
	paths       []string
	onReload    func(*Settings, error)
	interval    time.Duration

	mu     sync.Mutex
	mtimes map[string]time.Time
}

// NewWatcher creates a watcher for the settings of projectRoot. onReload
// receives the freshly loaded settings, or the error that loading hit.
func NewWatcher(projectRoot string, onReload func(*Settings, error)) *Watcher {
	w := &Watcher{
		projectRoot: projectRoot,
		paths:       SettingsFiles(projectRoot),
		onReload:    onReload,
		interval:    DefaultWatchInterval,
		mtimes:      make(map[string]time.Time),
	}
	w.snapshotLocked()
	return w
}

// SetInterval overrides the polling interval. Call before Run.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Run polls until ctx is cancelled and returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check polls once, reloading when something changed. It reports whether
// a reload happened.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	changed := w.changedLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed {
		s, err := Load(w.projectRoot)
		w.onReload(s, err)
	}
	return changed
}

// changedLocked compares current mtimes with stored snapshots. Must hold mu.
func (w *Watcher) changedLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			if _, existed := w.mtimes[path]; existed {
				return true
			}
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
