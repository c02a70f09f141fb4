package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/logger"
)

// Reload carries a freshly decoded file, or the error that prevented it.
type Reload struct {
	Path string
	Mesh *mesh.Mesh
	Err  error
}

// Watcher reloads open files when their contents change on disk.
// Parent directories are watched so editors that replace files atomically
// are still noticed. Reloads are delivered on a channel for the caller to
// drain on its own goroutine.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	digests map[string]uint64
	dirs    map[string]int
	timers  map[string]*time.Timer
	closed  bool

	reloads chan Reload
	done    chan struct{}
}

// NewWatcher creates a watcher; call Start to begin delivering events.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		watcher:  w,
		debounce: debounce,
		log:      logger.Named("watcher"),
		digests:  make(map[string]uint64),
		dirs:     make(map[string]int),
		timers:   make(map[string]*time.Timer),
		reloads:  make(chan Reload, 16),
		done:     make(chan struct{}),
	}, nil
}

// Reloads returns the channel of changed files.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Add starts tracking path. The current contents become the baseline digest.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.digests[abs]; ok {
		return nil
	}
	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.digests[abs] = digestFile(abs)
	return nil
}

// Remove stops tracking path.
func (w *Watcher) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.digests[abs]; !ok {
		return nil
	}
	delete(w.digests, abs)
	if t, ok := w.timers[abs]; ok {
		t.Stop()
		delete(w.timers, abs)
	}

	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	return w.watcher.Remove(dir)
}

// Expect records data as the contents path is about to have, so a write
// made by this process does not come back as a reload. Call it before
// writing.
func (w *Watcher) Expect(path string, data []byte) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.digests[abs]; ok {
		w.digests[abs] = xxhash.Sum64(data)
	}
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					w.schedule(event.Name)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch error", zap.Error(err))

			case <-w.done:
				return
			}
		}
	}()
}

// Close stops the watcher. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	close(w.done)
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.digests[path]; !ok || w.closed {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.check(path)
	})
}

// check re-reads path and emits a Reload when its digest changed.
func (w *Watcher) check(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Mid-replace; a later Create will retry.
		w.log.Debug("reload skipped", zap.String("path", path), zap.Error(err))
		return
	}
	sum := xxhash.Sum64(data)

	w.mu.Lock()
	prev, tracked := w.digests[path]
	if !tracked || w.closed || prev == sum {
		w.mu.Unlock()
		return
	}
	w.digests[path] = sum
	delete(w.timers, path)
	w.mu.Unlock()

	r := Reload{Path: path}
	r.Mesh, r.Err = Decode(path, data)

	select {
	case w.reloads <- r:
		w.log.Debug("file changed", zap.String("path", path), zap.Uint64("digest", sum))
	case <-w.done:
	default:
		w.log.Warn("reload dropped, queue full", zap.String("path", path))
	}
}

func digestFile(path string) uint64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
