package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds theme names taken from user config.
const maxAssetNameLength = 64

// ValidateAssetName checks that an asset name is a bare file stem.
// Names come from paper.config.json and command-line flags, so anything that
// could select a file outside the asset directories is rejected: separators,
// dots, NUL bytes, and names longer than maxAssetNameLength.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxAssetNameLength:
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidAssetName, len(name), maxAssetNameLength)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
