// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitSignal waits for one change callback, failing the test on timeout.
func waitSignal(t *testing.T, ch <-chan struct{}, timeout time.Duration, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal(msg)
	}
}

// TestFsnotifyWatcher_FiresOnWrite tests that writing the watched file
// triggers the debounced callback.
func TestFsnotifyWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1.0.0\"\n"), 0600))

	changed := make(chan struct{}, 1)
	fw, err := NewFsnotifyWatcher(path, 50*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer fw.Close()

	require.NoError(t, fw.Watch())

	require.NoError(t, os.WriteFile(path, []byte("version = \"1.0.1\"\n"), 0600))

	waitSignal(t, changed, 3*time.Second, "no callback after config write")
}

// TestFsnotifyWatcher_IgnoresSiblings tests that edits to other files in
// the directory do not fire the callback.
func TestFsnotifyWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1.0.0\"\n"), 0600))

	changed := make(chan struct{}, 1)
	fw, err := NewFsnotifyWatcher(path, 50*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer fw.Close()

	require.NoError(t, fw.Watch())

	sibling := filepath.Join(dir, "history")
	require.NoError(t, os.WriteFile(sibling, []byte("hello\n"), 0600))

	select {
	case <-changed:
		t.Error("callback fired for a sibling file")
	case <-time.After(500 * time.Millisecond):
	}
}

// TestPollingWatcher_FiresOnModTimeChange tests the polling fallback using
// an explicit modification time bump.
func TestPollingWatcher_FiresOnModTimeChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1.0.0\"\n"), 0600))

	changed := make(chan struct{}, 1)
	pw := NewPollingWatcher(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer pw.Close()

	require.NoError(t, pw.Watch())

	// Chtimes guarantees a visible change regardless of filesystem
	// timestamp granularity.
	bumped := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, bumped, bumped))

	waitSignal(t, changed, 3*time.Second, "no callback after mod time change")
}

// TestStartWatcher_ReturnsWatcher tests the factory produces a working
// watcher for an existing file.
func TestStartWatcher_ReturnsWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1.0.0\"\n"), 0600))

	w, err := StartWatcher(path, func() {})
	require.NoError(t, err, "StartWatcher() should succeed for an existing file")
	require.NotNil(t, w, "StartWatcher() returned nil watcher")
	require.NoError(t, w.Close())
}
