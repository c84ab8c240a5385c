package paper

import "errors"

// Sentinel errors for library operations.
var (
	// ErrSourceNotFound indicates the source directory does not exist.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrConfigParse indicates the source's config file could not be parsed.
	// Build reports it in Result.ConfigWarning and continues with defaults.
	ErrConfigParse = errors.New("failed to parse config")

	// ErrThemeNotFound indicates the configured site theme does not exist.
	// It is checked before any output is written.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrUnsafeStaging indicates a staging directory that cannot be safely
	// deleted and recreated.
	ErrUnsafeStaging = errors.New("unsafe staging directory")

	// ErrRender indicates a document could not be rendered.
	ErrRender = errors.New("document rendering failed")

	// Asset loading errors.
	ErrHighlightNotFound = errors.New("highlight style not found")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrScriptNotFound    = errors.New("script not found")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
)
