package notify

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/ports/driven"
	"github.com/captainfanatic/trolly/internal/logger"
)

// coalesceInterval bounds how often filesystem events turn into
// notifications. SQLite touches the file several times per write.
const coalesceInterval = 250 * time.Millisecond

// Watcher watches the database file for writes made by other
// processes and republishes them as collection change notifications.
type Watcher struct {
	fsw      *fsnotify.Watcher
	notifier driven.Notifier
	uri      domain.URI
	limiter  *rate.Limiter
	names    map[string]struct{}
	done     chan struct{}
}

// NewWatcher starts watching the directory holding dbPath. Events for
// the database file or its WAL are coalesced and delivered to
// notifier as changes to the matcher's collection URI.
func NewWatcher(dbPath string, matcher domain.Matcher, notifier driven.Notifier) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory, not the file: SQLite may replace the file
	// and a WAL checkpoint touches siblings.
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(dbPath), err)
	}

	base := filepath.Base(dbPath)
	w := &Watcher{
		fsw:      fsw,
		notifier: notifier,
		uri:      matcher.Collection(),
		limiter:  rate.NewLimiter(rate.Every(coalesceInterval), 1),
		names: map[string]struct{}{
			base:          {},
			base + "-wal": {},
		},
		done: make(chan struct{}),
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

// loop translates filesystem events into bus notifications.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if _, watched := w.names[filepath.Base(ev.Name)]; !watched {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			logger.Debug("database file changed on disk (%s)", ev.Name)
			w.notifier.NotifyChange(w.uri)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
