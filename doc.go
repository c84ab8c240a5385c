// Package paper compiles a directory of Markdown documents into a static
// documentation site.
//
// # Quick Start
//
// Create a builder and build a source directory:
//
//	b, err := paper.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(ctx, "docs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d documents\n", result.Documents)
//
// The site is written to dist/ by default:
//
//	dist/
//	├── index.html      shell with window.__config and window.__catalogs
//	├── index.js        client router
//	├── index.css       site theme
//	├── highlight.css   code highlight theme (when enabled)
//	└── static/         one .html fragment per .md document
//
// # Catalog
//
// The catalog mirrors the source tree. A leading digit followed by an
// underscore orders entries and is stripped from the display name:
//
//	docs/2_setup.md          -> "setup",  weight 2
//	docs/1_intro.md          -> "intro",  weight 1
//	docs/faq.md              -> "faq",    weight 100
//	docs/guides/0_start.md   -> "start",  weight 0
//
// Only .md files and directories are cataloged. Entries of a level are
// stably sorted by weight. Display names can be replaced through the
// alias map of the config file.
//
// # Configuration
//
// The source directory may hold paper.config.json (or paper.config.yaml,
// paper.config.yml):
//
//	{
//	  "theme": "default",
//	  "highlight": true,
//	  "highlightTheme": "monokai",
//	  "alias": {"setup": "Getting Set Up"}
//	}
//
// A malformed config file is reported in Result.ConfigWarning and the build
// continues with defaults. Programmatic overrides are applied on top:
//
//	b, err := paper.NewBuilder(
//	    paper.WithLayout(paper.Layout{Output: "public"}),
//	    paper.WithOverrides(func(c *paper.Config) { c.Theme = "dark" }),
//	)
//
// # Custom Assets
//
// Override built-in themes, the shell template or the client script:
//
//	loader, err := paper.NewAssetLoader("/path/to/assets")
//	b, err := paper.NewBuilder(paper.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	├── highlight/
//	│   └── custom.css
//	├── templates/
//	│   └── index.html
//	└── scripts/
//	    └── index.js
//
// Highlight themes not found on disk are rendered from the chroma style of
// the same name.
//
// # Error Handling
//
// Errors can be checked using errors.Is:
//
//	_, err := b.Build(ctx, "docs")
//	if errors.Is(err, paper.ErrThemeNotFound) {
//	    // no output was written
//	}
//
// Available sentinel errors:
//   - ErrSourceNotFound: source directory does not exist
//   - ErrConfigParse: config file could not be parsed (warning only)
//   - ErrThemeNotFound: configured theme does not exist
//   - ErrUnsafeStaging: staging directory is unsafe to delete
//   - ErrRender: a document could not be rendered
//   - ErrInvalidAssetPath: custom asset path is not a directory
package paper
