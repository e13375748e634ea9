// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It monitors the crosswalk inputs — the source table, the asset catalog tree,
// the rules file — and debounces rapid events (editors and export tools often
// trigger multiple writes per save).
package fsnotify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// File names/suffixes that must not trigger a re-run.
var ignoreFiles = map[string]bool{
	".DS_Store": true,
	".swp":      true,
	".swx":      true,
	".tmp":      true,
	"~":         true,
}

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex

	// files are watched exactly; events for their siblings are dropped.
	// roots are directory trees watched recursively.
	files map[string]bool
	roots []string
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:    fw,
		done:  make(chan struct{}),
		files: make(map[string]bool),
	}, nil
}

// Watch starts monitoring every given path: directories recursively, plain
// files individually. A file is watched through its parent directory so the
// watch survives editors that save via rename-and-replace.
// onChange is called with the absolute path of each changed input.
func (w *Watcher) Watch(paths []string, onChange func(path string)) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		if info.IsDir() {
			if err := w.addTree(abs); err != nil {
				return err
			}
			w.roots = append(w.roots, abs)
			continue
		}
		if err := w.fw.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		w.files[abs] = true
	}

	// Debounce state: track last event time per file
	debounce := make(map[string]time.Time)
	var dmu sync.Mutex
	const debounceInterval = 50 * time.Millisecond

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				// For Create events, add new directories under a watched root
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if w.underRoot(path) && !shouldIgnoreDir(info.Name()) {
							w.fw.Add(path)
						}
					}
				}

				// Skip sibling files and ignored paths
				if !w.relevant(path) {
					continue
				}

				// Debounce: skip if we've seen this file recently
				dmu.Lock()
				last, exists := debounce[path]
				now := time.Now()
				if exists && now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				debounce[path] = now
				dmu.Unlock()

				// Fire callback for relevant operations
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					onChange(path)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

// addTree registers root and every non-hidden directory below it.
func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if !info.IsDir() {
			return nil
		}
		if shouldIgnoreDir(info.Name()) && path != root {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

// relevant reports whether an event path maps to a watched input: one of the
// named files, or anything non-noise under a watched root.
func (w *Watcher) relevant(path string) bool {
	if shouldIgnorePath(path) {
		return false
	}
	if w.files[path] {
		return true
	}
	return w.underRoot(path)
}

// underRoot reports whether path lies inside one of the watched trees.
func (w *Watcher) underRoot(path string) bool {
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// shouldIgnoreDir returns true if the directory name should be skipped.
// Hidden directories cover VCS metadata and the .thumbnails trees that asset
// exports drop alongside models.
func shouldIgnoreDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

// shouldIgnorePath returns true if the file path should not trigger onChange.
func shouldIgnorePath(path string) bool {
	base := filepath.Base(path)

	// Check ignored file names/suffixes
	if ignoreFiles[base] {
		return true
	}
	for suffix := range ignoreFiles {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	// Check if any path component is a hidden directory
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part != "." && part != ".." && shouldIgnoreDir(part) {
			return true
		}
	}

	return false
}
