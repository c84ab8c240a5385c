package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{name: "simple name", input: "default", wantErr: nil},
		{name: "name with hyphen", input: "github-dark", wantErr: nil},
		{name: "name with underscore", input: "my_theme", wantErr: nil},
		{name: "mixed case", input: "MyTheme", wantErr: nil},
		{name: "max length", input: strings.Repeat("a", maxAssetNameLength), wantErr: nil},

		// Invalid names
		{name: "empty name", input: "", wantErr: ErrInvalidAssetName},
		{name: "too long", input: strings.Repeat("a", maxAssetNameLength+1), wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "../secret", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: "..\\secret", wantErr: ErrInvalidAssetName},
		{name: "dot", input: "theme.css", wantErr: ErrInvalidAssetName},
		{name: "absolute path", input: "/etc/passwd", wantErr: ErrInvalidAssetName},
		{name: "null byte", input: "theme\x00", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
