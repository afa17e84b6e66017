package source

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"lazytree/internal/log"
)

// Invalidator is the slice of the tree controller the refresher needs:
// dropping one folder's cache so its next expansion refetches.
type Invalidator interface {
	Invalidate(id string)
}

// Refresher watches directories with fsnotify and invalidates the
// containing folder's cache whenever an entry changes. It never mutates
// tree state directly; the controller refetches through the normal path.
type Refresher struct {
	inv       Invalidator
	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}

	mutex   sync.RWMutex
	running bool
	watched []string
}

// NewRefresher creates a refresher feeding invalidations to inv.
func NewRefresher(inv Invalidator) (*Refresher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Refresher{
		inv:       inv,
		fsWatcher: fsWatcher,
		stopChan:  make(chan struct{}),
	}, nil
}

// Watch adds a directory to the watch set. Watching the same directory
// twice is harmless.
func (r *Refresher) Watch(dir string) error {
	if err := r.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, existing := range r.watched {
		if existing == dir {
			return nil
		}
	}
	r.watched = append(r.watched, dir)
	return nil
}

// Directories returns the directories currently being watched.
func (r *Refresher) Directories() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	dirs := make([]string, len(r.watched))
	copy(dirs, r.watched)
	return dirs
}

// Start begins delivering invalidations. Errors from the watcher are
// logged and watching continues.
func (r *Refresher) Start() error {
	r.mutex.Lock()
	if r.running {
		r.mutex.Unlock()
		return fmt.Errorf("refresher already running")
	}
	r.running = true
	r.mutex.Unlock()

	go r.loop()
	return nil
}

func (r *Refresher) loop() {
	for {
		select {
		case event, ok := <-r.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			dir := filepath.Dir(event.Name)
			log.Debugf("fs event %s on %s, invalidating %s", event.Op, event.Name, dir)
			r.inv.Invalidate(dir)
		case err, ok := <-r.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)
		case <-r.stopChan:
			return
		}
	}
}

// Stop shuts the refresher down, releasing the underlying watcher even
// if Start was never called. It must not be restarted afterwards.
func (r *Refresher) Stop() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.running {
		r.running = false
		close(r.stopChan)
	}
	if err := r.fsWatcher.Close(); err != nil {
		log.Warnf("error closing watcher: %v", err)
	}
}

// IsRunning reports whether the refresher is delivering invalidations.
func (r *Refresher) IsRunning() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.running
}
