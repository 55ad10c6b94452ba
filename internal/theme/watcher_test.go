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
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

type fakeWatch struct {
	events chan fsnotify.Event
	errs   chan error

	mu     sync.Mutex
	closed bool
}

func newFakeWatch() *fakeWatch {
	return &fakeWatch{
		events: make(chan fsnotify.Event, 8),
		errs:   make(chan error, 1),
	}
}

func (f *fakeWatch) Events() <-chan fsnotify.Event { return f.events }
func (f *fakeWatch) Errors() <-chan error          { return f.errs }

func (f *fakeWatch) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeWatch) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// watchEnv puts a theme file in place and returns a watcher wired to fakes.
func watchEnv(t *testing.T) (*Watcher, *[]*fakeWatch) {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	mustWrite(t, filepath.Join(base, "omarchy", "theme", "colors"), "background=#111111\n")

	var watches []*fakeWatch
	watcher := NewWatcherWithFactory(func(path string) (FileWatch, error) {
		w := newFakeWatch()
		watches = append(watches, w)
		return w, nil
	})
	return watcher, &watches
}

func waitFor(t *testing.T, check func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestWatcher_ContentChangeFiresCallback(t *testing.T) {
	watcher, watches := watchEnv(t)

	var mu sync.Mutex
	fired := 0
	watcher.Start(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer watcher.Stop()

	(*watches)[0].events <- fsnotify.Event{Name: "colors", Op: fsnotify.Write}

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired == 1
	}, "Expected one callback after a write event")
}

func TestWatcher_IgnoresIrrelevantEvents(t *testing.T) {
	watcher, watches := watchEnv(t)

	var mu sync.Mutex
	fired := 0
	watcher.Start(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer watcher.Stop()

	(*watches)[0].events <- fsnotify.Event{Name: "colors", Op: fsnotify.Remove}
	(*watches)[0].events <- fsnotify.Event{Name: "colors", Op: fsnotify.Create}
	(*watches)[0].events <- fsnotify.Event{Name: "colors", Op: fsnotify.Rename}
	// A save-completion touch still counts as a content change.
	(*watches)[0].events <- fsnotify.Event{Name: "colors", Op: fsnotify.Chmod}

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired == 1
	}, "Expected only the chmod event to fire the callback")
}

func TestWatcher_RestartReleasesPreviousSubscription(t *testing.T) {
	watcher, watches := watchEnv(t)

	watcher.Start(func() {})
	watcher.Start(func() {})
	defer watcher.Stop()

	if len(*watches) != 2 {
		t.Fatalf("Expected 2 subscriptions created, got %d", len(*watches))
	}
	if !(*watches)[0].isClosed() {
		t.Error("Expected the first subscription to be released before the second was armed")
	}
	if (*watches)[1].isClosed() {
		t.Error("Expected the second subscription to stay live")
	}
}

func TestWatcher_StopSilencesCallback(t *testing.T) {
	watcher, watches := watchEnv(t)

	var mu sync.Mutex
	fired := 0
	watcher.Start(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	watcher.Stop()
	if watcher.Active() {
		t.Error("Expected watcher to be idle after Stop")
	}
	if !(*watches)[0].isClosed() {
		t.Error("Expected subscription to be released on Stop")
	}

	// An event already in flight must not reach the cleared callback.
	select {
	case (*watches)[0].events <- fsnotify.Event{Name: "colors", Op: fsnotify.Write}:
	default:
	}
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired != 0 {
		t.Errorf("Expected no callback after Stop, got %d", fired)
	}
}

func TestWatcher_NoThemeFileStaysIdle(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	subscribes := 0
	watcher := NewWatcherWithFactory(func(path string) (FileWatch, error) {
		subscribes++
		return newFakeWatch(), nil
	})

	watcher.Start(func() {})

	if subscribes != 0 {
		t.Errorf("Expected no subscription without a theme file, got %d", subscribes)
	}
	if watcher.Active() {
		t.Error("Expected watcher to remain idle")
	}
}

func TestWatcher_SubscribeFailureStaysIdle(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	mustWrite(t, filepath.Join(base, "omarchy", "theme", "colors"), "background=#111111\n")

	watcher := NewWatcherWithFactory(func(path string) (FileWatch, error) {
		return nil, errors.New("inotify unavailable")
	})

	watcher.Start(func() {})

	if watcher.Active() {
		t.Error("Expected watcher to remain idle when the subscription fails")
	}
}
