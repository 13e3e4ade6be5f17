package intake

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/logger"
)

// Watcher observes a drop directory and reports newly arrived video files.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher on the given directory.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{dir: dir, watcher: w}, nil
}

// Run delivers the path of every video file dropped into the directory to
// fn until the context is cancelled. Non-video files are ignored.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if !domain.IsVideoFile(event.Name) {
				logger.Debug("watch: ignoring %s", event.Name)
				continue
			}
			fn(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
