// Package pipeline implements the per-document Markdown-to-HTML pipeline and
// the injection of site data into the HTML shell.
//
// A document goes through these stages, in order:
//   - front matter stripping (adrg/frontmatter)
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark
//   - mark placeholder conversion
//   - rewriting of relative .md links to the generated .html pages
//
// Renderer chains these stages. The shell injector inserts the site
// configuration, the catalog and the client script tag into index.html.
package pipeline
