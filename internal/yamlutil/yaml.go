// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON documents are valid YAML, so the same decoder reads both formats.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// IsBlank reports whether data holds no document: only whitespace.
func IsBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

// Unmarshal decodes data into v, ignoring unknown fields.
// Decode errors are rendered with the offending source line.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %s", yaml.FormatError(err, false, true))
	}
	return nil
}
