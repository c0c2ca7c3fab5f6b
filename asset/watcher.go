package asset

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to watched files on a channel, debounced per
// file. Directories are watched so files replaced by rename are still
// seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]bool
	debounce time.Duration
	timers   map[string]*time.Timer
	changes  chan string
	done     chan struct{}
	closed   bool
}

// NewWatcher creates a new file watcher and starts its event loop
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch adds files to the watch list
func (w *Watcher) Watch(files ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if err := w.watcher.Add(filepath.Dir(absPath)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		w.files[absPath] = true
	}
	return nil
}

// Changes delivers the absolute path of each changed file
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only trigger on write or create events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.handleFileChange(filepath.Clean(event.Name))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (w *Watcher) handleFileChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[path] {
		return
	}

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}

	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case w.changes <- path:
		case <-w.done:
		default:
			log.Printf("Dropping change of %s, consumer is behind", path)
		}
	})
}

// Close stops the watcher. Pending debounced changes are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	for _, timer := range w.timers {
		timer.Stop()
	}
	return w.watcher.Close()
}
