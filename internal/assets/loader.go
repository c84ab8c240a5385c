package assets

// Names of the built-in assets.
const (
	DefaultStyleName     = "default"
	DefaultHighlightName = "default"
	ShellTemplateName    = "index"
	ClientScriptName     = "index"
)

// AssetLoader defines the contract for loading site assets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadStyle loads a theme stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadHighlight loads a code highlight stylesheet by name.
	// Returns ErrHighlightNotFound if the style doesn't exist.
	LoadHighlight(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadScript loads a client script by name (without .js extension).
	// Returns ErrScriptNotFound if the script doesn't exist.
	LoadScript(name string) (string, error)
}
