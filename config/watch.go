package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the tuning section of a config file whenever the file
// changes. Only the latest valid tuning is kept; readers drain Updates once
// per frame.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan Tuning
	logger  *log.Logger
}

// Watch starts watching path until ctx is cancelled. The parent directory is
// watched rather than the file so that editors which replace the file on
// save are still seen.
func Watch(ctx context.Context, path string, logger *log.Logger) (*Watcher, error) {
	if _, err := FormatFor(path); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fsWatch,
		updates: make(chan Tuning, 1),
		logger:  logger,
	}
	go w.start(ctx)
	return w, nil
}

// Updates delivers reloaded tuning. The channel is closed when the watcher
// stops.
func (w *Watcher) Updates() <-chan Tuning {
	return w.updates
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) start(ctx context.Context) {
	defer close(w.updates)
	defer w.fs.Close()

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher", "err", err)

		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("keeping previous tuning", "err", err)
		return
	}
	if err := cfg.Tuning.Validate(); err != nil {
		w.logger.Warn("keeping previous tuning", "err", err)
		return
	}

	// Replace any tuning nobody has picked up yet.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg.Tuning
	w.logger.Info("tuning reloaded", "path", w.path)
}
