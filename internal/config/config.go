// Package config loads the per-source site configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/alnah/go-paper/internal/assets"
	"github.com/alnah/go-paper/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse  = errors.New("failed to parse config")
	ErrFieldTooLong = errors.New("field exceeds maximum length")
	ErrInvalidAlias = errors.New("invalid alias")
)

// FileNames lists the config files searched in a source directory, in order.
var FileNames = []string{
	"paper.config.json",
	"paper.config.yaml",
	"paper.config.yml",
}

// Field length limits.
const (
	MaxDocPathLength = 2048
	MaxAliasEntries  = 1000
	MaxAliasLength   = 200
)

// Config holds the site options read from the source directory.
// The JSON form is embedded verbatim into the generated index page.
type Config struct {
	Theme          string            `yaml:"theme" json:"theme"`
	Highlight      bool              `yaml:"highlight" json:"highlight"`
	HighlightTheme string            `yaml:"highlightTheme" json:"highlightTheme"`
	DocPath        string            `yaml:"docPath" json:"docPath,omitempty"`
	Alias          map[string]string `yaml:"alias" json:"alias"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Theme == "" {
		c.Theme = assets.DefaultStyleName
	}
	if c.HighlightTheme == "" {
		c.HighlightTheme = assets.DefaultHighlightName
	}
	if c.Alias == nil {
		c.Alias = map[string]string{}
	}
}

// Validate checks asset names and field lengths.
// Called by Load, but available for callers who build a Config by hand.
func (c *Config) Validate() error {
	if err := assets.ValidateAssetName(c.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if err := assets.ValidateAssetName(c.HighlightTheme); err != nil {
		return fmt.Errorf("highlightTheme: %w", err)
	}
	if err := validateFieldLength("docPath", c.DocPath, MaxDocPathLength); err != nil {
		return err
	}
	if len(c.Alias) > MaxAliasEntries {
		return fmt.Errorf("%w: %d entries (max %d)", ErrInvalidAlias, len(c.Alias), MaxAliasEntries)
	}
	for k, v := range c.Alias {
		if k == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidAlias)
		}
		if err := validateFieldLength("alias."+k, k, MaxAliasLength); err != nil {
			return err
		}
		if err := validateFieldLength("alias."+k, v, MaxAliasLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Find returns the first config file present in dir, or "" if none is.
func Find(fs billy.Basic, dir string) string {
	for _, name := range FileNames {
		p := path.Join(dir, name)
		if info, err := fs.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Load reads the config file of the source directory dir.
//
// A missing file yields defaults and an empty path. An empty file yields
// defaults. A file that cannot be decoded or validated yields defaults
// together with an error wrapping ErrConfigParse, so callers may degrade
// to defaults with a warning. Read errors other than absence are returned
// as is.
func Load(fs billy.Basic, dir string) (*Config, string, error) {
	p := Find(fs, dir)
	if p == "" {
		return DefaultConfig(), "", nil
	}

	data, err := util.ReadFile(fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), "", nil
		}
		return DefaultConfig(), p, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return DefaultConfig(), p, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, p, nil
}

// Parse decodes a YAML or JSON config document and applies defaults.
func Parse(data []byte) (*Config, error) {
	if yamlutil.IsBlank(data) {
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}
