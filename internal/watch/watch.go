// Package watch rebuilds NullScript sources when they change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce suppresses rapid successive changes to the same file.
const DefaultDebounce = 300 * time.Millisecond

// OnChange is invoked for every debounced change to an .ns file.
type OnChange func(path string)

// Watcher observes a directory tree for NullScript source changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange OnChange
	ignore   []string
	debounce time.Duration

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// New creates a watcher over root (recursively) that calls onChange for
// each changed .ns file. Paths containing one of the ignore patterns are
// skipped, as are hidden files and editor temp files.
func New(root string, ignore []string, onChange OnChange) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		ignore:   ignore,
		debounce: DefaultDebounce,
		lastSeen: make(map[string]time.Time),
	}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// fsnotify watches are not recursive; register every subdirectory.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// Run blocks, dispatching change callbacks until ctx is cancelled or the
// underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(evt)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) handle(evt fsnotify.Event) {
	if !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Rename) {
		return
	}
	path := evt.Name
	if w.ignored(path) {
		return
	}
	// New directories need their own watches.
	if evt.Has(fsnotify.Create) {
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			_ = w.addRecursive(path)
			return
		}
	}
	if !strings.HasSuffix(path, ".ns") {
		return
	}
	if !w.shouldFire(path) {
		return
	}
	w.onChange(path)
}

// shouldFire applies per-file debouncing.
func (w *Watcher) shouldFire(path string) bool {
	now := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	if last, ok := w.lastSeen[path]; ok && now.Sub(last) < w.debounce {
		return false
	}
	w.lastSeen[path] = now
	return true
}

func (w *Watcher) ignored(path string) bool {
	for _, pattern := range w.ignore {
		if pattern != "" && strings.Contains(path, pattern) {
			return true
		}
	}
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".tmp") ||
		strings.HasSuffix(name, ".swp")
}
