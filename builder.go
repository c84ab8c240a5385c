package paper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/alnah/go-paper/internal/assets"
	"github.com/alnah/go-paper/internal/catalog"
	"github.com/alnah/go-paper/internal/config"
	"github.com/alnah/go-paper/internal/fileutil"
	"github.com/alnah/go-paper/internal/logfields"
	"github.com/alnah/go-paper/internal/metrics"
	"github.com/alnah/go-paper/internal/pipeline"
	"github.com/alnah/go-paper/internal/site"
)

// Builder compiles a markdown directory into a static site.
// A Builder holds no per-build state and may be reused; builds sharing an
// output directory must not run concurrently.
type Builder struct {
	workDir     string
	logger      *slog.Logger
	assetPath   string
	assetLoader AssetLoader
	recorder    Recorder
	fs          billy.Filesystem
	layout      Layout
	overrides   []func(*Config)

	loader assets.AssetLoader
}

// NewBuilder creates a Builder with the given options.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		logger:   slog.New(slog.DiscardHandler),
		recorder: metrics.NoopRecorder{},
		layout:   DefaultLayout(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.layout.Output == "" {
		b.layout.Output = DefaultOutput
	}

	if b.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		b.workDir = wd
	}

	if b.assetLoader != nil {
		b.loader = &publicToInternalAdapter{pub: b.assetLoader}
	} else {
		resolver, err := assets.NewAssetResolver(b.assetPath)
		if err != nil {
			return nil, convertError(err)
		}
		b.loader = resolver
	}
	return b, nil
}

// workspace holds the filesystem and the resolved directories of one build.
type workspace struct {
	fs      billy.Filesystem
	source  string
	staging string
	site    string
}

// resolve picks the filesystem for a build. Paths that all stay below the
// working directory are served by a filesystem rooted there; otherwise
// every path is made absolute.
func (b *Builder) resolve(source string) workspace {
	staging := b.layout.staging()
	output := b.layout.Output

	if b.fs != nil {
		return workspace{fs: b.fs, source: clean(source), staging: clean(staging), site: clean(output)}
	}

	if filepath.IsLocal(source) && filepath.IsLocal(staging) && filepath.IsLocal(output) {
		return workspace{
			fs:      osfs.New(b.workDir),
			source:  clean(source),
			staging: clean(staging),
			site:    clean(output),
		}
	}

	abs := func(p string) string {
		if !filepath.IsAbs(p) {
			p = filepath.Join(b.workDir, p)
		}
		return clean(p)
	}
	return workspace{
		fs:      osfs.New(string(filepath.Separator)),
		source:  abs(source),
		staging: abs(staging),
		site:    abs(output),
	}
}

func clean(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// Compile walks root and returns its catalog tree, using cfg.Alias for
// display names. A nil cfg means defaults.
func (b *Builder) Compile(ctx context.Context, root string, cfg *Config) ([]Node, error) {
	ws := b.resolve(root)
	return b.compile(ctx, ws, cfg)
}

func (b *Builder) compile(ctx context.Context, ws workspace, cfg *Config) ([]Node, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var nodes []Node
	err := b.stage(ctx, logfields.StageCatalog, func() error {
		var err error
		nodes, err = catalog.NewWalker(ws.fs, cfg.Alias).Walk(ctx, ws.source)
		return err
	})
	if err != nil {
		return nil, err
	}

	documents, directories := catalog.Count(nodes)
	b.recorder.SetCatalogSize(documents, directories)
	b.logger.Debug("Catalog generated",
		logfields.Source(ws.source),
		logfields.Documents(documents),
		logfields.Directories(directories))
	return nodes, nil
}

// Build compiles the source directory into the site described by the
// Builder's Layout.
//
// The stages run in order: load config, check the theme, generate the
// catalog, render the pages into staging, write the theme and highlight
// stylesheets, and assemble index.html and index.js. The first failing
// stage aborts the build; only a malformed config file and a missing
// highlight theme are tolerated.
func (b *Builder) Build(ctx context.Context, source string) (result *Result, err error) {
	start := time.Now()
	defer func() {
		b.finish(ctx, start, result, err)
	}()

	ws := b.resolve(source)
	if !fileutil.DirExists(ws.fs, ws.source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	result = &Result{}

	var cfg *Config
	err = b.stage(ctx, logfields.StageConfig, func() error {
		var loadErr error
		cfg, result.ConfigPath, loadErr = config.Load(ws.fs, ws.source)
		if loadErr != nil {
			if !errors.Is(loadErr, config.ErrConfigParse) {
				return loadErr
			}
			result.ConfigWarning = wrapError(ErrConfigParse, loadErr)
			b.logger.Warn("Invalid config file, using defaults",
				logfields.Path(result.ConfigPath), logfields.Error(loadErr))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, fn := range b.overrides {
		fn(cfg)
	}
	cfg.ApplyDefaults()

	if err := site.ValidateStaging(ws.staging, ws.source); err != nil {
		return nil, convertError(err)
	}

	// Theme pre-flight: no output is touched when the theme is unknown.
	if _, err := b.loader.LoadStyle(cfg.Theme); err != nil {
		return nil, convertError(err)
	}

	nodes, err := b.compile(ctx, ws, cfg)
	if err != nil {
		return nil, err
	}
	result.Catalog = nodes
	result.Documents, result.Directories = catalog.Count(nodes)

	renderer := &publicRenderer{inner: pipeline.NewRenderer(pipeline.ConverterOptions{Highlight: cfg.Highlight})}
	materializer := site.NewMaterializer(ws.fs, ws.staging, renderer, b.logger)
	if err := b.stage(ctx, logfields.StageStatic, func() error {
		return materializer.Materialize(ctx, nodes, ws.source)
	}); err != nil {
		return nil, convertError(err)
	}

	assembler := site.NewAssembler(ws.fs, ws.staging, ws.site, b.loader, b.logger)
	if err := b.stage(ctx, logfields.StageTheme, func() error {
		return assembler.InjectTheme(ctx, cfg)
	}); err != nil {
		return nil, convertError(err)
	}

	if err := b.stage(ctx, logfields.StageHighlight, func() error {
		var hlErr error
		result.Highlight, hlErr = assembler.InjectHighlight(ctx, cfg)
		return hlErr
	}); err != nil {
		return nil, convertError(err)
	}

	if err := b.stage(ctx, logfields.StageShell, func() error {
		return assembler.AssembleShell(ctx, cfg, nodes)
	}); err != nil {
		return nil, convertError(err)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// stage runs fn, then records its duration and result and logs it.
func (b *Builder) stage(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	b.logger.Debug("Stage started", logfields.Stage(name))

	err := fn()

	b.recorder.ObserveStageDuration(name, time.Since(start))
	b.recorder.IncStageResult(name, metrics.ResultFor(err, ctx.Err() != nil))
	if err != nil {
		b.logger.Debug("Stage failed", logfields.Stage(name), logfields.Since(start), logfields.Error(err))
		return err
	}
	b.logger.Info("Stage finished", logfields.Stage(name), logfields.Since(start))
	return nil
}

// finish records the build outcome.
func (b *Builder) finish(ctx context.Context, start time.Time, result *Result, err error) {
	elapsed := time.Since(start)
	b.recorder.ObserveBuildDuration(elapsed)

	switch {
	case err != nil && ctx.Err() != nil:
		b.recorder.IncBuildOutcome(metrics.BuildCanceled)
		b.logger.Warn("Build canceled", logfields.Stage(logfields.StageBuildTotal), logfields.Since(start))
	case err != nil:
		b.recorder.IncBuildOutcome(metrics.BuildFailed)
		b.logger.Error("Build failed", logfields.Stage(logfields.StageBuildTotal), logfields.Since(start), logfields.Error(err))
	case result != nil && result.ConfigWarning != nil:
		b.recorder.IncBuildOutcome(metrics.BuildWarning)
		b.logger.Info("Build finished with warnings", logfields.Stage(logfields.StageBuildTotal), logfields.Since(start),
			logfields.Documents(result.Documents), logfields.Directories(result.Directories))
	default:
		b.recorder.IncBuildOutcome(metrics.BuildSuccess)
		b.logger.Info("Build finished", logfields.Stage(logfields.StageBuildTotal), logfields.Since(start),
			logfields.Documents(result.Documents), logfields.Directories(result.Directories))
	}
}

// publicRenderer tags renderer failures with ErrRender.
type publicRenderer struct {
	inner *pipeline.Renderer
}

func (r *publicRenderer) Render(ctx context.Context, source []byte) ([]byte, error) {
	out, err := r.inner.Render(ctx, source)
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return out, err
}

var _ site.DocumentRenderer = (*publicRenderer)(nil)
