package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a document's front matter block could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

var utf8BOM = []byte("\xef\xbb\xbf")

// StripFrontMatter splits a leading YAML (---) or TOML (+++) front matter
// block from a document. Documents without front matter are returned whole
// with nil metadata.
func StripFrontMatter(source []byte) (body []byte, meta map[string]any, err error) {
	source = bytes.TrimPrefix(source, utf8BOM)
	if !hasFrontMatter(source) {
		return source, nil, nil
	}

	meta = map[string]any{}
	body, err = frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return body, meta, nil
}

// hasFrontMatter reports whether source opens with a delimiter line that is
// closed by a matching line further down. A lone thematic break (---) at the
// top of a document is not front matter.
func hasFrontMatter(source []byte) bool {
	for _, delim := range []string{"---", "+++"} {
		first, rest, found := bytes.Cut(source, []byte("\n"))
		if !found || string(bytes.TrimRight(first, " \r")) != delim {
			continue
		}
		for _, line := range bytes.Split(rest, []byte("\n")) {
			if string(bytes.TrimRight(line, " \r")) == delim {
				return true
			}
		}
	}
	return false
}
