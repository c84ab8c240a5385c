package main

import (
	"errors"
	"os"

	"github.com/alnah/go-paper"
)

// Exit codes for the paper CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error, including render failures
	ExitUsage   = 2 // Invalid flags, layout, or asset path
	ExitIO      = 3 // Source not found, permission denied
	ExitTheme   = 4 // Theme pre-flight failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Theme errors (exit 4)
	if errors.Is(err, paper.ErrThemeNotFound) {
		return ExitTheme
	}

	// I/O errors (exit 3)
	if errors.Is(err, paper.ErrSourceNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoSource) ||
		errors.Is(err, ErrTooManySources) ||
		errors.Is(err, ErrLogFormat) ||
		errors.Is(err, paper.ErrUnsafeStaging) ||
		errors.Is(err, paper.ErrInvalidAssetPath) ||
		errors.Is(err, paper.ErrTemplateNotFound) ||
		errors.Is(err, paper.ErrScriptNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
