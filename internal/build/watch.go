package build

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period before a rebuild fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reruns a build whenever one of its input files changes.
type Watcher struct {
	logger   zerolog.Logger
	files    map[string]bool
	dirs     map[string]bool
	debounce time.Duration
}

// RebuildFunc runs one build and returns the inputs to watch from then on.
// A nil slice keeps the current set.
type RebuildFunc func(ctx context.Context) ([]string, error)

// NewWatcher watches files. A non-positive debounce uses DefaultDebounce.
func NewWatcher(logger zerolog.Logger, files []string, debounce time.Duration) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	set, err := absSet(files)
	if err != nil {
		return nil, err
	}
	return &Watcher{logger: logger, files: set, dirs: make(map[string]bool), debounce: debounce}, nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	files := make([]string, 0, len(w.files))
	for file := range w.files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Run blocks until ctx is done, calling rebuild after changes settle.
// Rebuild errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.syncDirs(fsw); err != nil {
		return err
	}
	w.logger.Info().Int("files", len(w.files)).Msg("watching for changes")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			files, err := rebuild(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.Error().Err(err).Msg("rebuild failed")
				continue
			}
			w.logger.Info().Msg("rebuilt")
			if files != nil {
				if err := w.setFiles(fsw, files); err != nil {
					w.logger.Warn().Err(err).Msg("update watched files")
				}
			}
		}
	}
}

// setFiles replaces the watched set, adding and dropping directories as
// needed.
func (w *Watcher) setFiles(fsw *fsnotify.Watcher, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no files to watch")
	}
	set, err := absSet(files)
	if err != nil {
		return err
	}
	w.files = set
	if err := w.syncDirs(fsw); err != nil {
		return err
	}
	w.logger.Debug().Strs("files", w.Files()).Msg("watched files updated")
	return nil
}

// Editors replace files by rename, so the parent directories are watched
// and events are filtered by name.
func (w *Watcher) syncDirs(fsw *fsnotify.Watcher) error {
	want := make(map[string]bool)
	for file := range w.files {
		want[filepath.Dir(file)] = true
	}
	for dir := range w.dirs {
		if !want[dir] {
			_ = fsw.Remove(dir)
			delete(w.dirs, dir)
		}
	}
	for dir := range want {
		if w.dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	return nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}

func absSet(files []string) (map[string]bool, error) {
	set := make(map[string]bool, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", file, err)
		}
		set[abs] = true
	}
	return set, nil
}
