package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-paper"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"PAPER_THEME":           "dark",
		"PAPER_HIGHLIGHT_THEME": "dracula",
		"PAPER_OUTPUT":          "public",
		"PAPER_STAGING":         "tmp",
		"PAPER_ASSET_PATH":      "assets",
	}
	got := loadEnvConfig(func(k string) string { return vars[k] })

	want := envConfig{Theme: "dark", HighlightTheme: "dracula", Output: "public", Staging: "tmp", AssetPath: "assets"}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"PAPER_THEME=dark",
		"PAPER_THEM=dark",
		"PAPER_OUT=x",
		"HOME=/root",
	})

	out := buf.String()
	if strings.Count(out, "warning:") != 2 {
		t.Errorf("want 2 warnings, got %q", out)
	}
	if !strings.Contains(out, "PAPER_OUT ") || !strings.Contains(out, "PAPER_THEM ") {
		t.Errorf("missing names in %q", out)
	}
	if strings.Index(out, "PAPER_OUT ") > strings.Index(out, "PAPER_THEM ") {
		t.Errorf("warnings not sorted: %q", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides file values", func(t *testing.T) {
		t.Parallel()

		cfg := &paper.Config{Theme: "default", HighlightTheme: "default"}
		applyEnvConfig(&envConfig{Theme: "sepia", HighlightTheme: "monokai"}, cfg)
		if cfg.Theme != "sepia" || cfg.HighlightTheme != "monokai" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("empty env keeps file values", func(t *testing.T) {
		t.Parallel()

		cfg := &paper.Config{Theme: "dark"}
		applyEnvConfig(&envConfig{}, cfg)
		if cfg.Theme != "dark" {
			t.Errorf("Theme = %q, want dark", cfg.Theme)
		}
	})
}
