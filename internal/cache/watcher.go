package cache

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cache entries when their backing file changes on disk,
// so the next interaction reloads instead of serving stale data.
type Watcher struct {
	watcher *fsnotify.Watcher
	cache   *DatasetCache
}

// NewWatcher watches dir (non-recursively) and ties change events to c.
func NewWatcher(dir string, c *DatasetCache) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{watcher: w, cache: c}, nil
}

// Run blocks processing events until ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				fmt.Printf("🔄 Dataset file changed, invalidating cache: %s\n", event.Name)
				w.cache.Invalidate(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
