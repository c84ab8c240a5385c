// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForSourceNotFound returns a hint for a missing source directory.
func ForSourceNotFound() string {
	return format("pass the directory holding your .md files, e.g. paper build ./docs")
}

// ForConfigParse returns a hint for a config file that could not be decoded.
func ForConfigParse(path string) string {
	if path == "" {
		return ""
	}
	return format("fix or remove " + path + "; defaults are used meanwhile")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeStaging returns a hint for a staging directory that would delete sources.
func ForUnsafeStaging() string {
	return format("use --staging with a directory outside the source tree, e.g. --staging dist")
}

// ForStyleNotFound returns hints for theme not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or add styles/<name>.css under --asset-path")
}

// ForAssetPath returns a hint for an unusable custom asset directory.
func ForAssetPath() string {
	return format("--asset-path must be a readable directory with styles/, highlight/, templates/ or scripts/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
