package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styleFS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

//go:embed scripts/*.js
var scriptFS embed.FS

// EmbeddedLoader loads assets compiled into the binary.
// Highlight stylesheets are generated from chroma styles.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a theme stylesheet from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readEmbedded(styleFS, "styles", name, ".css", ErrStyleNotFound)
}

// LoadHighlight renders the chroma style of the given name as CSS.
func (e *EmbeddedLoader) LoadHighlight(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	return HighlightCSS(name)
}

// LoadTemplate loads an HTML template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readEmbedded(templateFS, "templates", name, ".html", ErrTemplateNotFound)
}

// LoadScript loads a client script from embedded assets by name.
func (e *EmbeddedLoader) LoadScript(name string) (string, error) {
	return readEmbedded(scriptFS, "scripts", name, ".js", ErrScriptNotFound)
}

func readEmbedded(fsys embed.FS, dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fsys.ReadFile(dir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}

	return string(content), nil
}

// StyleNames lists the embedded theme names, sorted.
func StyleNames() []string {
	entries, err := fs.ReadDir(styleFS, "styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".css") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
