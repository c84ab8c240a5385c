package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-paper"
	"github.com/alnah/go-paper/internal/assets"
	"github.com/alnah/go-paper/internal/hints"
	"github.com/alnah/go-paper/internal/metrics"
	"github.com/alnah/go-paper/internal/watch"
)

// CLI usage errors.
var (
	ErrNoSource       = errors.New("no source directory given")
	ErrTooManySources = errors.New("expected a single source directory")
	ErrLogFormat      = errors.New("invalid log format")
)

// runBuild builds the site once, then keeps rebuilding on change when
// --watch is set.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	switch {
	case len(positional) == 0:
		return fmt.Errorf("%w%s", ErrNoSource, hints.ForSourceNotFound())
	case len(positional) > 1:
		return fmt.Errorf("%w: got %d", ErrTooManySources, len(positional))
	}
	source := positional[0]

	logger, err := newLogger(env, flags.common)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}
	envCfg := loadEnvConfig(env.Getenv)
	layout := resolveLayout(flags, envCfg)

	workDir := env.WorkDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
	}

	assetPath := flags.site.assetPath
	if assetPath == "" {
		assetPath = envCfg.AssetPath
	}
	if assetPath != "" && !filepath.IsAbs(assetPath) {
		assetPath = filepath.Join(workDir, assetPath)
	}

	opts := []paper.Option{
		paper.WithWorkDir(workDir),
		paper.WithLogger(logger),
		paper.WithLayout(layout),
		paper.WithAssetPath(assetPath),
		paper.WithOverrides(func(c *paper.Config) {
			applyEnvConfig(envCfg, c)
			applyFlags(&flags.site, c)
		}),
	}

	var recorder *metrics.PrometheusRecorder
	if flags.metricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(nil)
		opts = append(opts, paper.WithRecorder(recorder))
	}

	builder, err := paper.NewBuilder(opts...)
	if err != nil {
		return withHint(err)
	}

	build := func(ctx context.Context) error {
		result, err := builder.Build(ctx, source)
		if recorder != nil {
			if mErr := metrics.WriteTextfile(flags.metricsFile, recorder.Registry()); mErr != nil {
				logger.Warn("Cannot write metrics", slog.String("error", mErr.Error()))
			}
		}
		if err != nil {
			return withHint(err)
		}
		report(env, flags, layout, result)
		return nil
	}

	if err := build(ctx); err != nil {
		if !flags.watch || exitCodeFor(err) != ExitGeneral || ctx.Err() != nil {
			return err
		}
		fmt.Fprintln(env.Stderr, "error:", err)
	}
	if !flags.watch {
		return nil
	}

	return runWatch(ctx, workDir, source, layout, logger, build)
}

// runWatch rebuilds on every burst of source changes until ctx is done.
func runWatch(ctx context.Context, workDir, source string, layout paper.Layout, logger *slog.Logger, build watch.RebuildFunc) error {
	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(workDir, p)
	}

	ignore := []string{abs(layout.Output)}
	if layout.Staging != "" {
		ignore = append(ignore, abs(layout.Staging))
	}

	w, err := watch.New(abs(source), watch.WithLogger(logger), watch.WithIgnore(ignore...))
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	return w.Run(ctx, build)
}

// resolveLayout picks output and staging directories: flags > env > default.
func resolveLayout(flags *buildFlags, env *envConfig) paper.Layout {
	layout := paper.DefaultLayout()
	switch {
	case flags.output != "":
		layout.Output = flags.output
	case env.Output != "":
		layout.Output = env.Output
	}
	switch {
	case flags.staging != "":
		layout.Staging = flags.staging
	case env.Staging != "":
		layout.Staging = env.Staging
	}
	return layout
}

// applyFlags applies explicitly given site flags to cfg.
func applyFlags(f *siteFlags, cfg *paper.Config) {
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.highlightSet {
		cfg.Highlight = f.highlight
	}
	if f.highlightTheme != "" {
		cfg.HighlightTheme = f.highlightTheme
	}
}

// report prints the build summary and config warnings.
func report(env *Environment, flags *buildFlags, layout paper.Layout, result *paper.Result) {
	if flags.common.quiet {
		return
	}
	if result.ConfigWarning != nil {
		fmt.Fprintf(env.Stderr, "warning: %v%s\n", result.ConfigWarning, hints.ForConfigParse(result.ConfigPath))
	}
	fmt.Fprintf(env.Stdout, "Built %d documents in %d directories to %s (%s)\n",
		result.Documents, result.Directories, layout.Output, result.Duration.Round(time.Millisecond))
}

// withHint appends an actionable hint to known errors.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, paper.ErrSourceNotFound):
		hint = hints.ForSourceNotFound()
	case errors.Is(err, paper.ErrThemeNotFound):
		hint = hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, paper.ErrUnsafeStaging):
		hint = hints.ForUnsafeStaging()
	case errors.Is(err, paper.ErrInvalidAssetPath):
		hint = hints.ForAssetPath()
	case errors.Is(err, os.ErrPermission):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// hintedError appends a hint to the message while keeping errors.Is intact.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() + e.hint }
func (e *hintedError) Unwrap() error { return e.err }

// newLogger builds the stderr logger. The default level only shows errors;
// --verbose shows stage logs.
func newLogger(env *Environment, f commonFlags) (*slog.Logger, error) {
	level := slog.LevelError
	if f.verbose && !f.quiet {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch f.logFormat {
	case "", logFormatText:
		return slog.New(slog.NewTextHandler(env.Stderr, opts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(env.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrLogFormat, f.logFormat, logFormatText, logFormatJSON)
	}
}
