package config

import (
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/foundation/core/log"
)

// Watcher reloads a configuration file when it changes on disk and hands
// the new configuration to registered callbacks.
type Watcher struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)

	path     string
	debounce time.Duration
	logger   *log.Logger
	fs       *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher starts watching the file initial was loaded from.
// The containing directory is watched so that editors that replace the
// file on save are still picked up.
func NewWatcher(initial *Config, logger *log.Logger) (*Watcher, error) {
	if initial.Path() == "" {
		return nil, mumlerr.New("configuration was not loaded from a file").WithCode(mumlerr.CodeConfigError)
	}
	if logger == nil {
		logger = log.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mumlerr.Wrap(err, "failed to create file watcher").WithCode(mumlerr.CodeConfigError)
	}
	path := filepath.Clean(initial.Path())
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, mumlerr.Wrap(err, "failed to watch config directory").
			WithCode(mumlerr.CodeConfigError).
			WithDetail("path", path)
	}

	w := &Watcher{
		config:   initial,
		path:     path,
		debounce: initial.General.ReloadDebounce.Duration,
		logger:   logger.WithField("config", path),
		fs:       fsw,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.watchLoop()

	w.logger.Debug("Configuration watcher started")
	return w, nil
}

// OnChange registers a callback that runs after every successful reload
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, callback)
	w.mu.Unlock()
}

// Config returns the current configuration
func (w *Watcher) Config() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

// Stop ends the watch loop and waits for it to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.done
	})
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	defer w.fs.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("Configuration file changed", log.Fields{"operation": event.Op.String()})

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("File watcher error", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	next, err := Load(w.path)
	if err != nil {
		w.logger.WarnWithErr("Keeping previous configuration", err)
		return
	}

	w.mu.Lock()
	if reflect.DeepEqual(w.config, next) {
		w.mu.Unlock()
		return
	}
	w.config = next
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	w.logger.Info("Configuration reloaded", log.Fields{"callbacks": len(callbacks)})
	for i, cb := range callbacks {
		w.notify(i, cb, next)
	}
}

func (w *Watcher) notify(idx int, cb func(*Config), cfg *Config) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Configuration callback panicked", log.Fields{"callback": idx, "panic": r})
		}
	}()
	cb(cfg)
}
