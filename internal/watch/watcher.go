// Package watch signals when any of a fixed set of files changes. It backs
// the watch command, which regenerates the catalog after the config or the
// palette file is edited.
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"tools.zach/dev/colorsets/internal/logger"
)

// DefaultPollInterval is the stat interval used when fsnotify is unavailable.
const DefaultPollInterval = time.Second

// ///////////////////////////////////////////////
// Watcher
// ///////////////////////////////////////////////

// Watcher monitors files for changes using fsnotify with a polling fallback.
//
// fsnotify watches the parent directories rather than the files, so editors
// that save by writing a temp file and renaming it over the original are
// still seen, and files that do not exist yet are picked up once created.
type Watcher struct {
	// files holds the cleaned absolute paths being monitored.
	files map[string]struct{}
	// events is buffered to 1 so back-to-back writes coalesce.
	events chan struct{}
	// done is closed by [Watcher.Close] to signal goroutines to exit.
	done chan struct{}

	mu  sync.Mutex
	fsw *fsnotify.Watcher // nil when polling

	once         sync.Once
	polling      atomic.Bool
	pollInterval time.Duration
}

// New creates a Watcher for the given files.
func New(files ...string) (*Watcher, error) {
	return newWatcher(DefaultPollInterval, files)
}

func newWatcher(interval time.Duration, files []string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("watch: no files given")
	}
	w := &Watcher{
		files:        make(map[string]struct{}, len(files)),
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: interval,
	}
	var dirs []string
	seen := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", f, err)
		}
		w.files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Info("fsnotify unavailable, falling back to polling", "error", err)
		w.startPolling()
		return w, nil
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			slog.Info("cannot watch directory, falling back to polling", "path", dir, "error", err)
			fsw.Close()
			w.startPolling()
			return w, nil
		}
	}

	w.fsw = fsw
	go w.watch(fsw)
	return w, nil
}

// Polling reports whether the watcher is using polling instead of fsnotify.
func (w *Watcher) Polling() bool {
	return w.polling.Load()
}

// Events returns a channel that receives a signal when a watched file changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases resources. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.fsw != nil {
			if closeErr := w.fsw.Close(); closeErr != nil {
				err = fmt.Errorf("closing fsnotify watcher: %w", closeErr)
			}
			w.fsw = nil
		}
	})
	return err
}

// watched reports whether name is one of the monitored files.
func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// watch forwards write and create events for monitored files. On an
// fsnotify error it closes the native watcher and switches to polling.
func (w *Watcher) watch(fsw *fsnotify.Watcher) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.watched(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Trace(slog.Default(), "file changed", "path", event.Name, "op", event.Op.String())
				w.notify()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Info("fsnotify error, switching to polling", "error", err)
			w.mu.Lock()
			if w.fsw != nil {
				w.fsw.Close()
				w.fsw = nil
			}
			w.mu.Unlock()
			w.startPolling()
			return
		}
	}
}

func (w *Watcher) startPolling() {
	w.polling.Store(true)
	go w.poll()
}

// poll stats every monitored file each interval and notifies when any
// modification time changes or a missing file appears.
func (w *Watcher) poll() {
	last := w.modTimes()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			cur := w.modTimes()
			changed := false
			for path, mod := range cur {
				if prev, ok := last[path]; !ok || !mod.Equal(prev) {
					changed = true
				}
			}
			last = cur
			if changed {
				w.notify()
			}
		}
	}
}

// modTimes returns the modification time of each monitored file that exists.
func (w *Watcher) modTimes() map[string]time.Time {
	mods := make(map[string]time.Time, len(w.files))
	for path := range w.files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mods[path] = info.ModTime()
	}
	return mods
}

// notify sends a single signal to the events channel. If a signal is already
// pending the call is a no-op, coalescing rapid successive changes.
func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}
