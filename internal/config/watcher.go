// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FILE WATCHER INTERFACE
// =============================================================================

// FileWatcher is the interface for config file watching implementations
type FileWatcher interface {
	// Watch starts watching for file changes
	Watch() error

	// Close stops watching and releases resources
	Close() error
}

// watchDebounce coalesces the burst of events an editor save produces
// into a single reload.
const watchDebounce = 500 * time.Millisecond

// pollInterval is the fallback polling cadence when fsnotify is unavailable.
const pollInterval = 5 * time.Second

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher implements FileWatcher using fsnotify
type FsnotifyWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	mu       sync.Mutex
	pending  map[string]time.Time // File path -> last change time
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewFsnotifyWatcher creates a new fsnotify-based watcher for a single file.
// onChange runs on the watcher goroutine after each debounced change.
func NewFsnotifyWatcher(path string, debounce time.Duration, onChange func()) (*FsnotifyWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	fw := &FsnotifyWatcher{
		path:     filepath.Clean(path),
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		pending:  make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}

	return fw, nil
}

// Watch starts watching for file changes
func (fw *FsnotifyWatcher) Watch() error {
	// Watch the parent directory. Editors replace files by rename, which
	// drops a watch placed on the file itself.
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return err
	}

	// Start event processing goroutine
	go fw.processEvents()

	// Start debounce timer goroutine
	go fw.processPending()

	return nil
}

// processEvents processes file system events
func (fw *FsnotifyWatcher) processEvents() {
	defer func() {
		if r := recover(); r != nil {
			// Non-fatal, goroutine exits
			_ = r
		}
	}()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only the config file itself is interesting
			if filepath.Clean(event.Name) != fw.path {
				continue
			}

			// Write covers in-place saves; Create and Rename cover
			// editors that write a temp file and swap it in.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.markPending(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Non-fatal
			_ = err
		}
	}
}

// markPending records a change for debounced processing
func (fw *FsnotifyWatcher) markPending(path string) {
	fw.mu.Lock()
	fw.pending[path] = time.Now()
	fw.mu.Unlock()
}

// processPending fires the change callback once the debounce window closes
func (fw *FsnotifyWatcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()

			fw.mu.Lock()
			fired := false
			for path, changeTime := range fw.pending {
				if now.Sub(changeTime) >= fw.debounce {
					delete(fw.pending, path)
					fired = true
				}
			}
			fw.mu.Unlock()

			if fired && fw.onChange != nil {
				fw.onChange()
			}
		}
	}
}

// Close stops watching and releases resources
func (fw *FsnotifyWatcher) Close() error {
	fw.cancel()
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingWatcher implements FileWatcher using periodic modification checks
type PollingWatcher struct {
	path     string
	interval time.Duration
	onChange func()
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	modTime  time.Time
	exists   bool
}

// NewPollingWatcher creates a new polling-based watcher
func NewPollingWatcher(path string, interval time.Duration, onChange func()) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &PollingWatcher{
		path:     filepath.Clean(path),
		interval: interval,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch starts watching for file changes
func (pw *PollingWatcher) Watch() error {
	// Record the starting state so only later edits fire
	pw.scan()

	go pw.poll()

	return nil
}

// scan records the current modification state, reporting whether it changed
func (pw *PollingWatcher) scan() bool {
	info, err := os.Stat(pw.path)

	pw.mu.Lock()
	defer pw.mu.Unlock()

	if err != nil {
		changed := pw.exists
		pw.exists = false
		pw.modTime = time.Time{}
		return changed
	}

	changed := !pw.exists || !info.ModTime().Equal(pw.modTime)
	pw.exists = true
	pw.modTime = info.ModTime()
	return changed
}

// poll periodically checks for file changes
func (pw *PollingWatcher) poll() {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			if pw.scan() && pw.onChange != nil {
				pw.onChange()
			}
		}
	}
}

// Close stops watching
func (pw *PollingWatcher) Close() error {
	pw.cancel()
	return nil
}

// =============================================================================
// WATCHER FACTORY
// =============================================================================

// StartWatcher starts a watcher on the given file (fsnotify or polling fallback).
func StartWatcher(path string, onChange func()) (FileWatcher, error) {
	// Try fsnotify first
	fw, err := NewFsnotifyWatcher(path, watchDebounce, onChange)
	if err == nil {
		if err := fw.Watch(); err == nil {
			return fw, nil
		}
		fw.Close()
	}

	// Fallback to polling watcher
	pw := NewPollingWatcher(path, pollInterval, onChange)
	if err := pw.Watch(); err != nil {
		return nil, err
	}

	return pw, nil
}

// WatchGlobal watches the default config file and reloads the global config
// on change. onReload receives the freshly loaded config; it runs on the
// watcher goroutine. Long-lived surfaces use this to pick up key or model
// edits without a restart.
func WatchGlobal(onReload func(*Config)) (FileWatcher, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	return StartWatcher(path, func() {
		if err := ReloadGlobal(); err != nil {
			return
		}
		if onReload != nil {
			onReload(Global())
		}
	})
}
