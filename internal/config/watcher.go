package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mantonx/streambase/internal/logger"
)

// Watcher reloads the active configuration when the config file changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
	onEvent []func(*Config)
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the containing directory; editors replace files on save, which
	// drops inotify watches placed on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		path:    path,
		watcher: fw,
		done:    make(chan struct{}),
	}, nil
}

// OnReload registers a callback invoked with the new configuration after each
// successful reload. Must be called before Start.
func (w *Watcher) OnReload(fn func(*Config)) {
	w.onEvent = append(w.onEvent, fn)
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := Load(w.path); err != nil {
				logger.Error("Config reload failed, keeping previous configuration",
					logger.String("path", w.path), logger.Err("error", err))
				continue
			}
			logger.Info("Configuration reloaded", logger.String("path", w.path))
			cfg := Get()
			for _, fn := range w.onEvent {
				fn(cfg)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Config watcher error", logger.Err("error", err))
		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
