// Package watch rebuilds a site when its source tree changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-paper/internal/catalog"
	"github.com/alnah/go-paper/internal/logfields"
)

// DefaultDebounce is the quiet period after the last change before a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc performs one build. Errors are logged and watching continues.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors a source directory and its subdirectories.
type Watcher struct {
	root     string
	ignore   []string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithIgnore excludes directories (typically the output and staging
// directories) from watching.
func WithIgnore(dirs ...string) Option {
	return func(w *Watcher) {
		for _, d := range dirs {
			if abs, err := filepath.Abs(d); err == nil {
				w.ignore = append(w.ignore, abs)
			}
		}
	}
}

// New creates a Watcher for root. Call Close when done.
func New(root string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		root:     abs,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(abs); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run calls rebuild after each burst of relevant changes until ctx is done.
// Rebuilds run on the calling goroutine, so two rebuilds never overlap;
// changes arriving during a rebuild schedule exactly one more.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	w.logger.Info("Watching for changes", logfields.Path(w.root))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) {
				w.watchIfDir(event.Name)
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			start := time.Now()
			if err := rebuild(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				w.logger.Error("Rebuild failed", logfields.Error(err))
				continue
			}
			w.logger.Info("Rebuilt", logfields.Since(start))

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}

// relevant filters out chmod-only events, ignored directories and files the
// catalog never reads.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if w.ignored(event.Name) {
		return false
	}
	base := filepath.Base(event.Name)
	if !catalog.IsCandidate(base) && !strings.HasPrefix(base, "paper.config.") {
		return false
	}
	// Directory events carry no extension; removals and renames of any
	// candidate entry change the catalog.
	return true
}

func (w *Watcher) ignored(p string) bool {
	for _, dir := range w.ignore {
		if p == dir || strings.HasPrefix(p, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// watchIfDir starts watching a newly created directory tree.
func (w *Watcher) watchIfDir(p string) {
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.addTree(p); err != nil {
		w.logger.Warn("Cannot watch new directory", logfields.Path(p), logfields.Error(err))
	}
}

// addTree watches dir and every candidate subdirectory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && (!catalog.IsCandidate(d.Name()) || w.ignored(p)) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}
