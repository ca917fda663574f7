// Package watch re-runs collection analysis when a collection's manifest or
// documents change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors a collections base directory and reports which collection
// a filesystem event belongs to. Events are debounced per collection so a
// burst of writes triggers one re-run.
type Watcher struct {
	watcher  *fsnotify.Watcher
	baseDir  string
	debounce time.Duration
	ignore   map[string]bool
	log      zerolog.Logger
}

// New creates a watcher over baseDir and its collection subdirectories.
func New(baseDir string, debounce time.Duration, log zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	ww := &Watcher{watcher: w, baseDir: baseDir, debounce: debounce, ignore: map[string]bool{}, log: log}
	if err := ww.addRecursive(baseDir); err != nil {
		w.Close()
		return nil, err
	}
	return ww, nil
}

// addRecursive watches the base directory, each collection directory, and
// each collection's immediate subdirectories (the docs dir).
func (w *Watcher) addRecursive(base string) error {
	if err := w.watcher.Add(base); err != nil {
		return err
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(base, e.Name())
		if err := w.watcher.Add(dir); err != nil {
			w.log.Warn().Str("dir", dir).Err(err).Msg("cannot watch directory")
			continue
		}
		subs, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, sub := range subs {
			if sub.IsDir() {
				if err := w.watcher.Add(filepath.Join(dir, sub.Name())); err != nil {
					w.log.Warn().Str("dir", filepath.Join(dir, sub.Name())).Err(err).Msg("cannot watch directory")
				}
			}
		}
	}
	return nil
}

// Ignore excludes filenames from triggering re-runs. The output record the
// analysis itself writes must be listed here or every run re-triggers one.
func (w *Watcher) Ignore(names ...string) {
	for _, n := range names {
		if n != "" {
			w.ignore[n] = true
		}
	}
}

// Run blocks, invoking onChange with the collection directory whose contents
// changed, until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func(collectionDir string)) error {
	pending := map[string]*time.Timer{}
	fire := make(chan string, 16)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case dir := <-fire:
			delete(pending, dir)
			onChange(dir)
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.ignore[filepath.Base(event.Name)] {
				continue
			}
			dir := w.collectionFor(event.Name)
			if dir == "" {
				continue
			}
			w.log.Debug().Str("path", event.Name).Str("collection", dir).Msg("change detected")
			if t, ok := pending[dir]; ok {
				t.Reset(w.debounce)
				continue
			}
			d := dir
			pending[dir] = time.AfterFunc(w.debounce, func() { fire <- d })
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// collectionFor maps an event path onto the owning collection directory
// directly under the base. Events on the base directory itself are ignored.
func (w *Watcher) collectionFor(path string) string {
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil || rel == "." || rel == ".." {
		return ""
	}
	first := rel
	for i := 0; i < len(rel); i++ {
		if os.IsPathSeparator(rel[i]) {
			first = rel[:i]
			break
		}
	}
	dir := filepath.Join(w.baseDir, first)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
