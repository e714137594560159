package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher serves a catalog loaded from a directory and reloads it whenever
// a level file changes. A failed reload keeps the previous catalog.
// Callers see a new catalog only on their next Level call, so a level in
// progress is never altered.
type Watcher struct {
	dir     string
	logger  *log.Logger
	current atomic.Pointer[Catalog]

	fsnotify *fsnotify.Watcher
	updates  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	closeMu  sync.Mutex
	closed   bool
}

// NewWatcher loads dir and starts watching it. The initial load must succeed.
func NewWatcher(dir string, logger *log.Logger) (*Watcher, error) {
	cat, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("levels: cannot create watcher: %w", err)
	}
	if err := watchTree(fsWatch, dir); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("levels: cannot watch %s: %w", dir, err)
	}

	if logger == nil {
		logger = log.Default()
	}

	w := &Watcher{
		dir:      dir,
		logger:   logger.WithPrefix("levels"),
		fsnotify: fsWatch,
		updates:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	w.current.Store(cat)

	w.wg.Add(1)
	go w.start()

	return w, nil
}

// Level returns a level from the most recently loaded catalog.
func (w *Watcher) Level(index int) (Level, error) {
	return w.Catalog().Level(index)
}

// Count returns the number of levels in the current catalog.
func (w *Watcher) Count() int {
	return w.Catalog().Count()
}

// Catalog returns the current catalog snapshot.
func (w *Watcher) Catalog() *Catalog {
	return w.current.Load()
}

// Updates signals after every successful reload. Signals coalesce.
func (w *Watcher) Updates() <-chan struct{} {
	return w.updates
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeMu.Lock()
	if w.closed {
		w.closeMu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.closeMu.Unlock()

	w.wg.Wait()
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	defer w.wg.Done()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op.Has(fsnotify.Create) && isDir(e.Name) {
				// A new subdirectory may arrive with level files already in it.
				if err := watchTree(w.fsnotify, e.Name); err != nil {
					w.logger.Error("cannot watch new directory", "dir", e.Name, "err", err)
				}
				w.reload(e.Name)
				continue
			}
			if !relevant(e) {
				continue
			}
			w.reload(e.Name)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "err", err)

		case <-w.done:
			return
		}
	}
}

// watchTree adds root and every directory below it, matching the
// recursive walk of LoadDir.
func watchTree(fsWatch *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fsWatch.Add(path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// relevant filters out chmod events and files the loader would skip.
func relevant(e fsnotify.Event) bool {
	if !e.Op.Has(fsnotify.Create) && !e.Op.Has(fsnotify.Write) &&
		!e.Op.Has(fsnotify.Remove) && !e.Op.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(e.Name))
	return slices.Contains(FormatExtensions(), ext)
}

func (w *Watcher) reload(trigger string) {
	cat, err := LoadDir(w.dir)
	if err != nil {
		w.logger.Error("reload failed, keeping previous levels", "file", trigger, "err", err)
		return
	}

	w.current.Store(cat)
	w.logger.Info("levels reloaded", "file", trigger, "count", cat.Count())

	select {
	case w.updates <- struct{}{}:
	default:
	}
}
