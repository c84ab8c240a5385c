// Package catalog builds the navigation tree of a documentation site from a
// source directory.
//
// A catalog is an ordered tree of Node values. Leaves are markdown documents,
// inner nodes are directories. Siblings are ordered by weight, which comes
// from an optional single-digit filename prefix:
//
//	docs/
//	├── 1_intro.md      -> "intro", weight 1
//	├── 2_setup.md      -> "setup", weight 2
//	└── guides/         -> "guides", weight 100
//	    └── 0_start.md  -> "start", weight 0
//
// Trees are built once per run and never mutated afterwards.
package catalog

import "strings"

// DocExt is the extension of source documents.
const DocExt = ".md"

// DefaultWeight is the weight of an entry without a weight prefix.
// It is larger than any prefix weight, so unweighted entries sort last.
const DefaultWeight = 100

// Node is one entry of the catalog tree.
type Node struct {
	SourcePath  string `json:"fileName"`
	DisplayName string `json:"name"`
	Weight      int    `json:"weight"`
	Children    []Node `json:"children"`
	Dir         bool   `json:"-"`
}

// IsLeaf reports whether the node is a single document.
func (n Node) IsLeaf() bool {
	return !n.Dir
}

// Derive returns the display name and weight encoded in a source path.
//
// The document extension is stripped and the last path segment is used as
// the name. A name of the form "{digit}_{rest}" yields weight digit and name
// rest; any other name keeps DefaultWeight. Only a single digit is a weight:
// "10_notes" stays "10_notes" with DefaultWeight.
//
// A path with no separator is returned unsplit with DefaultWeight.
func Derive(path string) (string, int) {
	name := strings.TrimSuffix(path, DocExt)
	if !strings.Contains(name, "/") {
		return name, DefaultWeight
	}
	name = name[strings.LastIndex(name, "/")+1:]

	if len(name) >= 2 && isDigit(name[0]) && name[1] == '_' {
		return name[2:], int(name[0] - '0')
	}
	return name, DefaultWeight
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// BuildNode creates a leaf node for path.
// An alias entry for the derived name replaces the display name.
func BuildNode(path string, alias map[string]string) Node {
	return newNode(path, alias, false, nil)
}

// BuildDirNode creates a directory node for path with the given children.
func BuildDirNode(path string, alias map[string]string, children []Node) Node {
	return newNode(path, alias, true, children)
}

func newNode(path string, alias map[string]string, dir bool, children []Node) Node {
	raw, weight := Derive(path)
	if children == nil {
		children = []Node{}
	}
	return Node{
		SourcePath:  path,
		DisplayName: resolveAlias(raw, alias),
		Weight:      weight,
		Children:    children,
		Dir:         dir,
	}
}

// resolveAlias returns the alias of raw, or raw when no non-empty alias exists.
func resolveAlias(raw string, alias map[string]string) string {
	if name, ok := alias[raw]; ok && name != "" {
		return name
	}
	return raw
}

// Count returns the number of documents and directories in nodes.
func Count(nodes []Node) (documents, directories int) {
	for _, n := range nodes {
		if n.IsLeaf() {
			documents++
			continue
		}
		directories++
		d, dirs := Count(n.Children)
		documents += d
		directories += dirs
	}
	return documents, directories
}
