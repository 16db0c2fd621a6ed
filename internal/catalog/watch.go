package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/propdeck/internal/logger"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a catalog file whenever it is written.
//
// The parent directory is watched rather than the file itself so editors that
// replace files on save are still picked up.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	log      *logger.Logger
	debounce time.Duration
}

// NewWatcher starts watching path.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		watcher:  watcher,
		log:      log.With("path", abs),
		debounce: defaultDebounce,
	}, nil
}

// Run delivers a freshly loaded catalog, or the load error, to onChange once
// writes to the file have been quiet for the debounce window. It blocks until
// ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func(*Catalog, error)) {
	defer w.watcher.Close()

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				pending = time.After(w.debounce)
			}
		case <-pending:
			pending = nil
			w.log.Debug("catalog changed")
			c, err := Load(w.path)
			if err != nil {
				w.log.Error(err, "catalog reload failed")
			}
			onChange(c, err)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "catalog watcher error")
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
