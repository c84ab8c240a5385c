package assets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// defaultChromaStyle backs the "default" highlight theme.
const defaultChromaStyle = "github"

// ChromaStyleName maps a highlight theme name to a chroma style name.
func ChromaStyleName(name string) string {
	if name == DefaultHighlightName {
		return defaultChromaStyle
	}
	return strings.ToLower(name)
}

// lookupChromaStyle returns the registered chroma style for a theme name.
func lookupChromaStyle(name string) (*chroma.Style, bool) {
	style, ok := styles.Registry[ChromaStyleName(name)]
	return style, ok
}

// HighlightCSS renders a chroma style as a class-based stylesheet matching
// the markup produced with chromahtml.WithClasses(true).
// Returns ErrHighlightNotFound if chroma has no style with that name.
func HighlightCSS(name string) (string, error) {
	style, ok := lookupChromaStyle(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrHighlightNotFound, name)
	}

	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, style); err != nil {
		return "", fmt.Errorf("%w: rendering %q: %v", ErrAssetRead, name, err)
	}
	return sb.String(), nil
}

// HighlightNames lists the available chroma styles plus the "default" alias.
func HighlightNames() []string {
	names := make([]string, 0, len(styles.Registry)+1)
	names = append(names, DefaultHighlightName)
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
