package paper

import (
	"errors"
	"fmt"

	"github.com/alnah/go-paper/internal/assets"
	"github.com/alnah/go-paper/internal/site"
)

// Asset name constants for built-in assets.
const (
	// DefaultTheme is the name of the built-in site theme.
	DefaultTheme = assets.DefaultStyleName

	// DefaultHighlightTheme is the name of the built-in code highlight theme.
	DefaultHighlightTheme = assets.DefaultHighlightName
)

// AssetLoader defines the contract for loading site assets.
// Implementations may load from filesystem, embedded assets, S3, database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a site theme by name (without .css extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadHighlight loads a code highlight stylesheet by name.
	// Returns ErrHighlightNotFound if the style doesn't exist.
	LoadHighlight(name string) (string, error)

	// LoadTemplate loads the HTML shell template by name ("index").
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadScript loads the client script by name ("index").
	// Returns ErrScriptNotFound if the script doesn't exist.
	LoadScript(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory may contain:
//   - styles/{name}.css for site themes
//   - highlight/{name}.css for code highlight themes
//   - templates/index.html for the site shell
//   - scripts/index.js for the client script
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps internal AssetResolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	return content, convertError(err)
}

func (a *assetLoaderAdapter) LoadHighlight(name string) (string, error) {
	content, err := a.resolver.LoadHighlight(name)
	return content, convertError(err)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	return content, convertError(err)
}

func (a *assetLoaderAdapter) LoadScript(name string) (string, error) {
	content, err := a.resolver.LoadScript(name)
	return content, convertError(err)
}

// publicToInternalAdapter wraps a public AssetLoader for internal consumers,
// which recognize only internal sentinels.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	content, err := a.pub.LoadStyle(name)
	return content, toInternal(err, ErrThemeNotFound, assets.ErrStyleNotFound)
}

func (a *publicToInternalAdapter) LoadHighlight(name string) (string, error) {
	content, err := a.pub.LoadHighlight(name)
	return content, toInternal(err, ErrHighlightNotFound, assets.ErrHighlightNotFound)
}

func (a *publicToInternalAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.pub.LoadTemplate(name)
	return content, toInternal(err, ErrTemplateNotFound, assets.ErrTemplateNotFound)
}

func (a *publicToInternalAdapter) LoadScript(name string) (string, error) {
	content, err := a.pub.LoadScript(name)
	return content, toInternal(err, ErrScriptNotFound, assets.ErrScriptNotFound)
}

// toInternal tags a public not-found error with its internal counterpart.
func toInternal(err, public, internal error) error {
	if err == nil || !errors.Is(err, public) {
		return err
	}
	return fmt.Errorf("%w: %w", internal, err)
}

// convertError maps internal sentinel errors to public errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrThemeNotFound),
		errors.Is(err, ErrHighlightNotFound),
		errors.Is(err, ErrTemplateNotFound),
		errors.Is(err, ErrScriptNotFound):
		return err // already public
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrThemeNotFound, err)
	case errors.Is(err, assets.ErrHighlightNotFound):
		return wrapError(ErrHighlightNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrScriptNotFound):
		return wrapError(ErrScriptNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrThemeNotFound, err) // Invalid name means not found
	case errors.Is(err, site.ErrUnsafeStaging):
		return wrapError(ErrUnsafeStaging, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}

// Compile-time interface checks.
var (
	_ AssetLoader        = (*assetLoaderAdapter)(nil)
	_ assets.AssetLoader = (*publicToInternalAdapter)(nil)
)
