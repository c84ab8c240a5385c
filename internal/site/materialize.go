package site

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/alnah/go-paper/internal/catalog"
	"github.com/alnah/go-paper/internal/fileutil"
	"github.com/alnah/go-paper/internal/logfields"
)

// DocumentRenderer turns one Markdown document into an HTML fragment.
type DocumentRenderer interface {
	Render(ctx context.Context, source []byte) ([]byte, error)
}

// Materializer writes the rendered documents of a catalog under
// staging/static, mirroring the source tree.
type Materializer struct {
	fs       billy.Filesystem
	staging  string
	renderer DocumentRenderer
	logger   *slog.Logger
}

// NewMaterializer creates a Materializer writing below staging on fs.
// A nil logger discards output.
func NewMaterializer(fs billy.Filesystem, staging string, renderer DocumentRenderer, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Materializer{fs: fs, staging: staging, renderer: renderer, logger: logger}
}

// Reset deletes the staging directory and recreates it with an empty
// static/ subdirectory.
func (m *Materializer) Reset() error {
	if err := fileutil.ResetDir(m.fs, m.staging); err != nil {
		return err
	}
	static := m.staging + "/" + StaticDir
	if err := m.fs.MkdirAll(static, fileutil.DirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", static, err)
	}
	return nil
}

// Materialize resets the staging directory, then renders every document of
// nodes depth first. sourceRoot is the directory the catalog was built from.
// The first failure aborts the run.
func (m *Materializer) Materialize(ctx context.Context, nodes []catalog.Node, sourceRoot string) error {
	if err := ValidateStaging(m.staging, sourceRoot); err != nil {
		return err
	}
	if err := m.Reset(); err != nil {
		return err
	}
	return m.materialize(ctx, nodes, sourceRoot)
}

func (m *Materializer) materialize(ctx context.Context, nodes []catalog.Node, sourceRoot string) error {
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !node.IsLeaf() {
			dir := TargetPath(m.staging, sourceRoot, node.SourcePath)
			if err := m.fs.MkdirAll(dir, fileutil.DirMode); err != nil {
				return fmt.Errorf("creating directory %s: %w", dir, err)
			}
			if err := m.materialize(ctx, node.Children, sourceRoot); err != nil {
				return err
			}
			continue
		}

		if err := m.writePage(ctx, node, sourceRoot); err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) writePage(ctx context.Context, node catalog.Node, sourceRoot string) error {
	source, err := util.ReadFile(m.fs, node.SourcePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", node.SourcePath, err)
	}

	html, err := m.renderer.Render(ctx, source)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", node.SourcePath, err)
	}

	target := PagePath(m.staging, sourceRoot, node.SourcePath)
	if err := fileutil.WriteFile(m.fs, target, html); err != nil {
		return err
	}
	m.logger.Debug("Rendered document", logfields.Source(node.SourcePath), logfields.Target(target))
	return nil
}
