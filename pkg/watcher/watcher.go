// Package watcher reloads the settings file when it changes on disk.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/rdclock/internal/log"
	"github.com/philipparndt/rdclock/pkg/config"
)

// ConfigWatcher delivers a freshly loaded config after each settled change
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(config.Config)

	mu      sync.Mutex
	timer   *time.Timer
	reloads sync.WaitGroup // in-flight reloads, awaited by Close
	started bool
	closed  bool
	done    chan struct{}
}

// NewConfigWatcher watches the directory of path so that editors replacing
// the file atomically are picked up as well.
func NewConfigWatcher(path string, debounce time.Duration, onChange func(config.Config)) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &ConfigWatcher{
		watcher:  fsw,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine
func (w *ConfigWatcher) Start() {
	w.mu.Lock()
	if w.started || w.closed {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					w.schedule()
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Warnw("config watcher error", "error", err)
			}
		}
	}()
}

// schedule restarts the debounce timer
func (w *ConfigWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *ConfigWatcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.reloads.Add(1)
	w.mu.Unlock()
	defer w.reloads.Done()

	cfg, err := config.Load(w.path)
	if err != nil {
		log.Warnw("keeping previous settings", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	log.Infow("settings reloaded", "path", w.path)
	w.onChange(cfg)
}

// Close stops watching, cancels a pending reload and waits for a running one.
// No callback runs after Close returns.
func (w *ConfigWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	started := w.started
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	w.reloads.Wait()
	return err
}
