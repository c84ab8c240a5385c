// Package assets provides the static resources of a generated site: theme
// stylesheets, code highlight stylesheets, the HTML shell template and the
// client script.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem and chroma styles
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in themes (default, dark, sepia), the
// index shell, the client script, and every chroma style as a highlight
// stylesheet.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the site builder. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is not
// found. This enables overriding a single theme while keeping the rest.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # site themes (e.g., dark.css)
//	├── highlight/
//	│   └── {name}.css           # code highlight themes
//	├── templates/
//	│   └── index.html           # site shell
//	└── scripts/
//	    └── index.js             # client router
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
