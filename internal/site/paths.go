package site

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-paper/internal/catalog"
	"github.com/alnah/go-paper/internal/fileutil"
)

// File names inside the staging and site directories.
const (
	StaticDir     = "static"
	ThemeFile     = "index.css"
	HighlightFile = "highlight.css"
	ShellFile     = "index.html"
	ScriptFile    = "index.js"
	PageExt       = ".html"
)

// ErrUnsafeStaging indicates a staging directory that is unsafe to delete.
var ErrUnsafeStaging = errors.New("unsafe staging directory")

// TargetPath maps a source path found below sourceRoot to its location under
// staging/static. Only the leading sourceRoot is removed, so distinct source
// paths always map to distinct targets.
func TargetPath(staging, sourceRoot, p string) string {
	rel := strings.TrimPrefix(p, sourceRoot)
	return path.Join(staging, StaticDir, rel)
}

// PagePath is TargetPath with the document extension swapped for .html.
func PagePath(staging, sourceRoot, p string) string {
	return fileutil.ReplaceExt(TargetPath(staging, sourceRoot, p), catalog.DocExt, PageExt)
}

// ValidateStaging rejects staging directories whose recursive deletion
// would be destructive: empty, the filesystem root, the working directory,
// or a path overlapping the source tree.
func ValidateStaging(staging, sourceRoot string) error {
	clean := path.Clean(staging)
	switch {
	case strings.TrimSpace(staging) == "":
		return fmt.Errorf("%w: empty path", ErrUnsafeStaging)
	case clean == "." || clean == "/":
		return fmt.Errorf("%w: %q", ErrUnsafeStaging, staging)
	case fileutil.Overlaps(clean, sourceRoot):
		return fmt.Errorf("%w: %q overlaps source %q", ErrUnsafeStaging, staging, sourceRoot)
	}
	return nil
}

// relativePrefix returns the URL prefix that leads from the site directory
// to the staging directory, "./" when they are the same.
func relativePrefix(site, staging string) string {
	rel, err := filepath.Rel(filepath.FromSlash(site), filepath.FromSlash(staging))
	if err != nil || rel == "." {
		return "./"
	}
	return filepath.ToSlash(rel) + "/"
}
