package paper

import (
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/alnah/go-paper/internal/catalog"
	"github.com/alnah/go-paper/internal/config"
	"github.com/alnah/go-paper/internal/metrics"
)

// Node is one entry of the catalog tree. A node with children is a
// directory; a node without children whose SourcePath ends in .md is a
// document.
type Node = catalog.Node

// Config holds the site options read from the source directory's
// paper.config.json (or .yaml/.yml).
type Config = config.Config

// Recorder receives build metrics.
type Recorder = metrics.Recorder

// DefaultOutput is the directory a site is written to when no Layout is set.
const DefaultOutput = "dist"

// Layout names the directories a build writes to.
//
// Output receives index.html and index.js. Staging receives the rendered
// pages under static/ plus the stylesheets; it is deleted and recreated on
// every build. An empty Staging means Output.
type Layout struct {
	Output  string
	Staging string
}

// DefaultLayout returns the layout writing everything to DefaultOutput.
func DefaultLayout() Layout {
	return Layout{Output: DefaultOutput}
}

func (l Layout) staging() string {
	if l.Staging == "" {
		return l.Output
	}
	return l.Staging
}

// Result summarizes a successful build.
type Result struct {
	// Catalog is the tree embedded into index.html.
	Catalog []Node

	// Documents and Directories count the nodes of Catalog.
	Documents   int
	Directories int

	// Highlight reports whether highlight.css was written.
	Highlight bool

	// ConfigPath is the config file that was read, empty when none exists.
	ConfigPath string

	// ConfigWarning is set when the config file could not be parsed and
	// defaults were used instead. It matches ErrConfigParse.
	ConfigWarning error

	// Duration is the wall time of the build.
	Duration time.Duration
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkDir sets the directory relative paths are resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(b *Builder) {
		b.workDir = dir
	}
}

// WithLogger sets the structured logger. Defaults to discarding output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithAssetPath sets a directory of custom assets that take precedence
// over the embedded ones. Ignored if WithAssetLoader is also used.
// An invalid path makes NewBuilder fail with ErrInvalidAssetPath.
func WithAssetPath(path string) Option {
	return func(b *Builder) {
		b.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(b *Builder) {
		b.assetLoader = loader
	}
}

// WithRecorder sets the metrics recorder. Defaults to a no-op recorder.
func WithRecorder(r Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithFilesystem runs the build against fs instead of the host filesystem.
// Paths are then interpreted by fs and WithWorkDir is ignored.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(b *Builder) {
		b.fs = fs
	}
}

// WithLayout sets the output and staging directories.
func WithLayout(l Layout) Option {
	return func(b *Builder) {
		b.layout = l
	}
}

// WithOverrides registers a function applied to the loaded configuration
// before the build uses it. Overrides run in registration order, after
// defaults are applied.
func WithOverrides(fn func(*Config)) Option {
	return func(b *Builder) {
		if fn != nil {
			b.overrides = append(b.overrides, fn)
		}
	}
}
