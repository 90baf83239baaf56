package vaporgrid

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of files, such as a config file and the textures it names. Changes are queued
// until the next Pending call, which reports each changed file once however many events it produced.
// The directories holding the files are watched rather than the files themselves, so editors that save by
// replacing a file are still picked up.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]struct{}
	done  chan struct{}

	mu      sync.Mutex
	changed []string // in the order first seen since the last Pending call
}

// NewWatcher starts watching the given files. Empty paths are ignored.
func NewWatcher(paths ...string) (*Watcher, error) {

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	watcher := &Watcher{
		fs:    fsw,
		files: map[string]struct{}{},
		done:  make(chan struct{}),
	}

	dirs := map[string]struct{}{}

	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		watcher.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go watcher.run()

	return watcher, nil

}

func (watcher *Watcher) run() {

	defer close(watcher.done)

	for {
		select {
		case event, ok := <-watcher.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, tracked := watcher.files[name]; !tracked {
				continue
			}
			watcher.mu.Lock()
			if !slices.Contains(watcher.changed, name) {
				watcher.changed = append(watcher.changed, name)
			}
			watcher.mu.Unlock()
		case err, ok := <-watcher.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", "err", err)
		}
	}

}

// Pending returns every file changed since the last call, each once, and clears the queue. It never blocks.
func (watcher *Watcher) Pending() []string {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	changed := watcher.changed
	watcher.changed = nil
	return changed
}

// Close stops watching and waits for the watcher goroutine to exit.
func (watcher *Watcher) Close() error {
	err := watcher.fs.Close()
	<-watcher.done
	return err
}
