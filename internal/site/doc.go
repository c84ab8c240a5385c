// Package site writes a generated documentation site.
//
// Layout, with the default where staging and site share one directory:
//
//	dist/
//	├── index.html      shell with window.__config and window.__catalogs
//	├── index.js        client router
//	├── index.css       theme
//	├── highlight.css   code highlight theme (only when enabled)
//	└── static/         one .html fragment per source document
//
// The Materializer owns static/ and recreates it on every run. The
// Assembler writes the stylesheets and the shell.
package site
