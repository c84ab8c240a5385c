package hints

import (
	"strings"
	"testing"
)

func TestForSourceNotFound(t *testing.T) {
	t.Parallel()

	hint := ForSourceNotFound()
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "paper build") {
		t.Error("expected usage example")
	}
}

func TestForConfigParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		contains string
		empty    bool
	}{
		{name: "no path", path: "", empty: true},
		{name: "json path", path: "docs/paper.config.json", contains: "docs/paper.config.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigParse(tt.path)
			if tt.empty {
				if hint != "" {
					t.Errorf("expected empty hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hint %q should contain %q", hint, tt.contains)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{name: "no styles", available: nil, want: ""},
		{name: "lists styles", available: []string{"dark", "default"}, want: "available: dark, default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForStyleNotFound(tt.available)
			if tt.want == "" {
				if hint != "" {
					t.Errorf("expected empty hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.want) {
				t.Errorf("hint %q should contain %q", hint, tt.want)
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hint     string
		contains string
	}{
		{name: "output directory", hint: ForOutputDirectory(), contains: "writable"},
		{name: "unsafe staging", hint: ForUnsafeStaging(), contains: "--staging"},
		{name: "asset path", hint: ForAssetPath(), contains: "--asset-path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("expected hint prefix, got %q", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.contains) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.contains)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("x"); got != "\n  hint: x" {
		t.Errorf("format(x) = %q", got)
	}
}
