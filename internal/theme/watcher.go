/*
MIT License

Copyright (c) 2025 Yuval Adar <adary@adary.org>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package theme

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/adaryorg/dispctl/internal/logging"
)

// ChangedCallback is invoked when the watched theme file content changes.
// It runs on the watcher goroutine and must not block.
type ChangedCallback func()

// FileWatch is one live file-system subscription. The real implementation
// wraps fsnotify; tests substitute fakes that count Close calls.
type FileWatch interface {
	Events() <-chan fsnotify.Event
	Errors() <-chan error
	Close() error
}

// WatchFactory opens a subscription on a path.
type WatchFactory func(path string) (FileWatch, error)

type fsnotifyWatch struct {
	w *fsnotify.Watcher
}

func (f *fsnotifyWatch) Events() <-chan fsnotify.Event { return f.w.Events }
func (f *fsnotifyWatch) Errors() <-chan error          { return f.w.Errors }
func (f *fsnotifyWatch) Close() error                  { return f.w.Close() }

func newFsnotifyWatch(path string) (FileWatch, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	return &fsnotifyWatch{w: w}, nil
}

// Watcher holds at most one live subscription on the active theme file and
// fires a callback when its content changes. Start is idempotent: it always
// releases the previous subscription before arming a new one, so there is
// never more than one callback source.
type Watcher struct {
	factory WatchFactory

	mu       sync.Mutex
	watch    FileWatch
	callback ChangedCallback
	done     chan struct{}
}

// NewWatcher returns a watcher backed by fsnotify.
func NewWatcher() *Watcher {
	return NewWatcherWithFactory(newFsnotifyWatch)
}

// NewWatcherWithFactory returns a watcher using the given subscription
// factory.
func NewWatcherWithFactory(factory WatchFactory) *Watcher {
	return &Watcher{factory: factory}
}

// Start resolves the active theme file and subscribes to it. A missing theme
// file or a failed subscription leaves the watcher idle silently: live
// reload degrades to unavailable and the rest of the application carries on.
func (w *Watcher) Start(callback ChangedCallback) {
	// Quiesce any previous subscription first so two can never be live.
	w.Stop()

	path := ActivePath()
	if path == "" {
		logging.Debug("No theme file to watch")
		return
	}

	watch, err := w.factory(path)
	if err != nil {
		logging.Warn("Theme file watch unavailable: %v", err)
		return
	}

	w.mu.Lock()
	w.watch = watch
	w.callback = callback
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	logging.Info("Watching theme file %s", path)
	go w.run(watch, done)
}

// Stop releases the subscription and clears the callback. After Stop
// returns no further callback invocation is delivered.
func (w *Watcher) Stop() {
	w.mu.Lock()
	watch := w.watch
	done := w.done
	w.watch = nil
	w.callback = nil
	w.done = nil
	w.mu.Unlock()

	if watch != nil {
		if err := watch.Close(); err != nil {
			logging.Debug("Failed to close theme watch: %v", err)
		}
	}
	if done != nil {
		close(done)
	}
}

// Active reports whether a subscription is currently held.
func (w *Watcher) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watch != nil
}

func (w *Watcher) run(watch FileWatch, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watch.Events():
			if !ok {
				return
			}
			// Write is the content change itself; Chmod covers the touch
			// some editors emit after finishing a save. Create, Remove and
			// Rename are deliberately ignored.
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Chmod) {
				w.notify(watch)
			}
		case err, ok := <-watch.Errors():
			if !ok {
				return
			}
			logging.Debug("Theme watch error: %v", err)
		}
	}
}

// notify fires the callback while holding the lock so that a concurrent
// Stop, once returned, guarantees the callback will not run again. The
// callback contract (non-blocking) makes holding the lock acceptable.
func (w *Watcher) notify(watch FileWatch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// A Start that replaced this subscription also invalidates its events.
	if w.watch != watch || w.callback == nil {
		return
	}
	w.callback()
}
