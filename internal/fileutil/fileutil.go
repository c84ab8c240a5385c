// Package fileutil provides file and path helpers over billy filesystems.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// Permissions for generated files and directories.
const (
	FileMode os.FileMode = 0o644
	DirMode  os.FileMode = 0o755
)

// ValidateExtension checks that the extension is a bare suffix such as ".html".
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ReplaceExt swaps the trailing from extension of p for to.
// Paths not ending in from get to appended.
func ReplaceExt(p, from, to string) string {
	return strings.TrimSuffix(p, from) + to
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(fs billy.Basic, p string) bool {
	info, err := fs.Stat(p)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(fs billy.Basic, p string) bool {
	info, err := fs.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// WriteFile writes data to p, creating parent directories as needed.
// An existing file is truncated.
func WriteFile(fs billy.Filesystem, p string, data []byte) error {
	if dir := path.Dir(p); dir != "." && dir != "/" {
		if err := fs.MkdirAll(dir, DirMode); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := util.WriteFile(fs, p, data, FileMode); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

// ResetDir removes dir and everything below it, then recreates it empty.
func ResetDir(fs billy.Filesystem, dir string) error {
	if err := util.RemoveAll(fs, dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := fs.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Contains reports whether child is parent itself or lies below it.
// Both paths are cleaned slash paths.
func Contains(parent, child string) bool {
	parent, child = path.Clean(parent), path.Clean(child)
	if parent == child || parent == "." || parent == "/" {
		return true
	}
	return strings.HasPrefix(child, parent+"/")
}

// Overlaps reports whether one of the two paths contains the other.
func Overlaps(a, b string) bool {
	return Contains(a, b) || Contains(b, a)
}
