// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package watch runs a function whenever a file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// Delay is how long File waits after the last change before calling the
// function, so that a single save doesn't trigger several runs.
const Delay = 250 * time.Millisecond

var readyHook func() // used in tests, called when File started watching

// File calls f each time the file at path is created or written, until ctx
// is done. Calls to f never overlap.
//
// The parent directory is watched rather than the file itself, because
// many editors and tools replace files instead of writing them in place.
func File(ctx context.Context, path string, f func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}

	var mu sync.Mutex
	d := newDebouncer(Delay, func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		f()
	})
	defer d.Stop()

	logger.Info(ctx, "watching for changes", slog.String("path", path))
	if readyHook != nil {
		readyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name || !shouldRun(event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling run",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			d.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watch error", slog.Any("err", err))
		case <-ctx.Done():
			return nil
		}
	}
}

// shouldRun reports whether op changes the file contents. Renames are
// followed by a create, so they are ignored along with chmod.
func shouldRun(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write) != 0
}

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a pending execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}
