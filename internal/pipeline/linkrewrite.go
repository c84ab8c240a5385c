package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteDocLinks points relative links to sibling Markdown documents at the
// generated pages: a[href] values such as "setup.md" or "../guides/0_start.md#install"
// become "setup.html" and "../guides/0_start.html#install".
//
// Left unchanged: absolute paths, URLs with a scheme, protocol-relative URLs,
// in-page anchors and links to anything other than .md files.
func RewriteDocLinks(fragment string) (string, error) {
	if !strings.Contains(fragment, ".md") {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	if !rewriteNode(doc) {
		return fragment, nil
	}
	return renderFragment(doc)
}

// parseFragment parses HTML in a body context so no <html><body> wrapper is
// added, and collects the nodes under a document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of a container built by parseFragment.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and rewrites document links.
// Reports whether anything changed.
func rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := rewriteDocHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

// rewriteDocHref maps "dir/page.md[#frag|?query]" to "dir/page.html[...]".
func rewriteDocHref(href string) (string, bool) {
	if !isRelativeLink(href) {
		return "", false
	}

	target, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		target, suffix = href[:i], href[i:]
	}
	if path.Ext(target) != ".md" {
		return "", false
	}
	return strings.TrimSuffix(target, ".md") + ".html" + suffix, true
}

// isRelativeLink returns true if the link is a relative file reference.
func isRelativeLink(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return false
	}
	// A colon before any slash marks a scheme (http:, mailto:, data:).
	if i := strings.IndexByte(href, ':'); i >= 0 && !strings.Contains(href[:i], "/") {
		return false
	}
	return true
}
