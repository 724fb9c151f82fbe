// internal/catalog/watcher.go
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultReloadDebounce = 250 * time.Millisecond

// Watcher reloads a fixture file into a Store whenever it changes on disk.
// A fixture that fails to load leaves the current catalog in place.
type Watcher struct {
	store    *Store
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      *logrus.Entry

	mu    sync.Mutex
	timer *time.Timer

	// OnReload, when set, is called after every reload attempt.
	OnReload func(err error)
}

func NewWatcher(store *Store, path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = defaultReloadDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory: editors replace files by rename, which drops a
	// watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		store:    store,
		path:     filepath.Clean(path),
		debounce: debounce,
		watcher:  fw,
		log:      logrus.WithField("fixture", path),
	}, nil
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("Fixture watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) reload() {
	fixture, err := LoadFixture(w.path)
	if err == nil {
		err = w.store.Replace(fixture)
	}

	if err != nil {
		w.log.WithError(err).Error("Failed to reload catalog fixture, keeping previous catalog")
	} else {
		w.log.WithFields(logrus.Fields{
			"listings":   len(fixture.Listings),
			"categories": len(fixture.Categories),
		}).Info("Catalog fixture reloaded")
	}

	if w.OnReload != nil {
		w.OnReload(err)
	}
}
