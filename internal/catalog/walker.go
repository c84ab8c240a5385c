package catalog

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
)

// SourceFS is the filesystem capability the Walker needs.
// Any billy.Filesystem satisfies it.
type SourceFS interface {
	ReadDir(path string) ([]os.FileInfo, error)
	Stat(filename string) (os.FileInfo, error)
}

// Walker discovers documents and directories below a source directory.
type Walker struct {
	fs    SourceFS
	alias map[string]string
}

// NewWalker creates a Walker reading from fs and resolving names through alias.
func NewWalker(fs SourceFS, alias map[string]string) *Walker {
	return &Walker{fs: fs, alias: alias}
}

// Walk returns the catalog nodes for dir, sorted by weight.
// Subdirectories are walked recursively. The first listing or stat error
// aborts the whole walk.
func (w *Walker) Walk(ctx context.Context, dir string) ([]Node, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if !IsCandidate(name) {
			continue
		}

		next := joinPath(dir, name)
		info, err := w.fs.Stat(next)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", next, err)
		}

		switch {
		case info.Mode().IsRegular():
			if !strings.HasSuffix(name, DocExt) {
				continue
			}
			nodes = append(nodes, BuildNode(next, w.alias))
		case info.IsDir():
			children, err := w.Walk(ctx, next)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, BuildDirNode(next, w.alias, children))
		}
	}

	slices.SortStableFunc(nodes, func(a, b Node) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
	return nodes, nil
}

// IsCandidate reports whether a directory entry name may be part of the
// catalog: a document, or a dot-free name that may be a subdirectory.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, DocExt) || !strings.Contains(name, ".")
}

// joinPath appends name to dir with a single separator. Unlike path.Join it
// keeps "./" for the current directory, so every produced path contains a
// separator.
func joinPath(dir, name string) string {
	return strings.TrimSuffix(dir, "/") + "/" + name
}
